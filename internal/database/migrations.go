package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RunMigrations creates any missing tables. Every statement is
// CREATE ... IF NOT EXISTS, so it runs on each start regardless of state.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	migrations := []string{
		createCompaniesTable,
		createProductsTable,
		createCategoriesTable,
		createProductsCategoriesXrefTable,
		createWarrantiesTable,
	}

	log.Info("Creating tables...")
	for i, migration := range migrations {
		log.Debug("Running migration", zap.Int("step", i+1), zap.Int("total", len(migrations)))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("Tables created")
	return nil
}

const createCompaniesTable = `
CREATE TABLE IF NOT EXISTS companies (
  company_id SERIAL PRIMARY KEY,
  company_name VARCHAR NOT NULL UNIQUE,
  active BOOLEAN DEFAULT true
);
`

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
  product_id SERIAL PRIMARY KEY,
  product_name VARCHAR NOT NULL UNIQUE,
  company_id INTEGER,
  description VARCHAR,
  price DECIMAL,
  active BOOLEAN DEFAULT true,
  FOREIGN KEY (company_id) REFERENCES companies(company_id)
);
`

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
  category_id SERIAL PRIMARY KEY,
  category_name VARCHAR NOT NULL UNIQUE
);
`

const createProductsCategoriesXrefTable = `
CREATE TABLE IF NOT EXISTS productscategoriesxref (
  product_id INTEGER,
  category_id INTEGER,
  PRIMARY KEY (product_id, category_id),
  FOREIGN KEY (product_id) REFERENCES products(product_id),
  FOREIGN KEY (category_id) REFERENCES categories(category_id)
);
`

const createWarrantiesTable = `
CREATE TABLE IF NOT EXISTS warranties (
  warranty_id SERIAL PRIMARY KEY,
  warranty_months INTEGER NOT NULL,
  product_id INTEGER,
  FOREIGN KEY (product_id) REFERENCES products(product_id)
);
`
