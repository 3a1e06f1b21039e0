package models

import "github.com/shopspring/decimal"

// Product matches the products table. Price is rendered as a JSON string
// ("9.99") and is null when never set.
type Product struct {
	ID          int64               `db:"product_id" json:"product_id"`
	Name        string              `db:"product_name" json:"product_name"`
	CompanyID   *int64              `db:"company_id" json:"company_id"`
	Description *string             `db:"description" json:"description"`
	Price       decimal.NullDecimal `db:"price" json:"price"`
	Active      bool                `db:"active" json:"active"`
}
