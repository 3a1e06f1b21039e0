package repositories

import (
	"context"

	"catalog-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const productColumns = "product_id, product_name, company_id, description, price, active"

var productUpdatable = []string{"product_name", "company_id", "description", "price", "active"}

// NewProduct holds the insertable columns; active takes the table default.
type NewProduct struct {
	Name        string
	CompanyID   int64
	Description *string
	Price       decimal.NullDecimal
}

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) WithTx(tx pgx.Tx) *ProductRepository {
	return &ProductRepository{db: tx}
}

func (r *ProductRepository) Create(ctx context.Context, p NewProduct) (*models.Product, error) {
	query := `
		INSERT INTO products (product_name, company_id, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns

	return collectOne[models.Product](r.db.Query(ctx, query,
		p.Name,
		p.CompanyID,
		p.Description,
		p.Price,
	))
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	return collectOne[models.Product](r.db.Query(ctx, query, id))
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_name = $1`
	return collectOne[models.Product](r.db.Query(ctx, query, name))
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY product_id`
	return collectAll[models.Product](r.db.Query(ctx, query))
}

func (r *ProductRepository) ListByActive(ctx context.Context, active bool) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = $1 ORDER BY product_id`
	return collectAll[models.Product](r.db.Query(ctx, query, active))
}

func (r *ProductRepository) ListByCompanyID(ctx context.Context, companyID int64) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY product_id`
	return collectAll[models.Product](r.db.Query(ctx, query, companyID))
}

func (r *ProductRepository) Update(ctx context.Context, id int64, changes Changes) error {
	query, args, err := buildUpdate("products", "product_id", productUpdatable, changes, id)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, args...)
	return err
}
