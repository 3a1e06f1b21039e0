package repositories

import (
	"context"

	"catalog-api/internal/models"

	"github.com/jackc/pgx/v5"
)

type ProductCategoryRepository struct {
	db DBTX
}

func NewProductCategoryRepository(db DBTX) *ProductCategoryRepository {
	return &ProductCategoryRepository{db: db}
}

func (r *ProductCategoryRepository) WithTx(tx pgx.Tx) *ProductCategoryRepository {
	return &ProductCategoryRepository{db: tx}
}

func (r *ProductCategoryRepository) Create(ctx context.Context, link models.ProductCategory) error {
	query := `
		INSERT INTO productscategoriesxref (product_id, category_id)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(ctx, query, link.ProductID, link.CategoryID)
	return err
}

func (r *ProductCategoryRepository) Find(ctx context.Context, link models.ProductCategory) (*models.ProductCategory, error) {
	query := `
		SELECT product_id, category_id
		FROM productscategoriesxref
		WHERE category_id = $1 AND product_id = $2
	`
	return collectOne[models.ProductCategory](r.db.Query(ctx, query, link.CategoryID, link.ProductID))
}
