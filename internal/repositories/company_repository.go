package repositories

import (
	"context"

	"catalog-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const companyColumns = "company_id, company_name, active"

var companyUpdatable = []string{"company_name", "active"}

type CompanyRepository struct {
	db DBTX
}

func NewCompanyRepository(db DBTX) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) WithTx(tx pgx.Tx) *CompanyRepository {
	return &CompanyRepository{db: tx}
}

func (r *CompanyRepository) Create(ctx context.Context, name string) (*models.Company, error) {
	query := `
		INSERT INTO companies (company_name)
		VALUES ($1)
		RETURNING ` + companyColumns

	return collectOne[models.Company](r.db.Query(ctx, query, name))
}

func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1`
	return collectOne[models.Company](r.db.Query(ctx, query, id))
}

func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_name = $1`
	return collectOne[models.Company](r.db.Query(ctx, query, name))
}

func (r *CompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY company_id`
	return collectAll[models.Company](r.db.Query(ctx, query))
}

func (r *CompanyRepository) Update(ctx context.Context, id int64, changes Changes) error {
	query, args, err := buildUpdate("companies", "company_id", companyUpdatable, changes, id)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, args...)
	return err
}
