package repositories

import (
	"context"

	"catalog-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const categoryColumns = "category_id, category_name"

var categoryUpdatable = []string{"category_name"}

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) WithTx(tx pgx.Tx) *CategoryRepository {
	return &CategoryRepository{db: tx}
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*models.Category, error) {
	query := `
		INSERT INTO categories (category_name)
		VALUES ($1)
		RETURNING ` + categoryColumns

	return collectOne[models.Category](r.db.Query(ctx, query, name))
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1`
	return collectOne[models.Category](r.db.Query(ctx, query, id))
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_name = $1`
	return collectOne[models.Category](r.db.Query(ctx, query, name))
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY category_id`
	return collectAll[models.Category](r.db.Query(ctx, query))
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, changes Changes) error {
	query, args, err := buildUpdate("categories", "category_id", categoryUpdatable, changes, id)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, args...)
	return err
}
