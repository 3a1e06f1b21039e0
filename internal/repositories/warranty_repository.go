package repositories

import (
	"context"

	"catalog-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const warrantyColumns = "warranty_id, warranty_months, product_id"

var warrantyUpdatable = []string{"warranty_months", "product_id"}

type WarrantyRepository struct {
	db DBTX
}

func NewWarrantyRepository(db DBTX) *WarrantyRepository {
	return &WarrantyRepository{db: db}
}

func (r *WarrantyRepository) WithTx(tx pgx.Tx) *WarrantyRepository {
	return &WarrantyRepository{db: tx}
}

func (r *WarrantyRepository) Create(ctx context.Context, months, productID int64) (*models.Warranty, error) {
	query := `
		INSERT INTO warranties (product_id, warranty_months)
		VALUES ($1, $2)
		RETURNING ` + warrantyColumns

	return collectOne[models.Warranty](r.db.Query(ctx, query, productID, months))
}

func (r *WarrantyRepository) FindByID(ctx context.Context, id int64) (*models.Warranty, error) {
	query := `SELECT ` + warrantyColumns + ` FROM warranties WHERE warranty_id = $1`
	return collectOne[models.Warranty](r.db.Query(ctx, query, id))
}

// FindByTerms looks a warranty up by its natural key.
func (r *WarrantyRepository) FindByTerms(ctx context.Context, months, productID int64) (*models.Warranty, error) {
	query := `
		SELECT ` + warrantyColumns + `
		FROM warranties
		WHERE warranty_months = $1 AND product_id = $2
		LIMIT 1`

	return collectOne[models.Warranty](r.db.Query(ctx, query, months, productID))
}

func (r *WarrantyRepository) Update(ctx context.Context, id int64, changes Changes) error {
	query, args, err := buildUpdate("warranties", "warranty_id", warrantyUpdatable, changes, id)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, args...)
	return err
}
