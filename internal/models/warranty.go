package models

type Warranty struct {
	ID        int64  `db:"warranty_id" json:"warranty_id"`
	Months    int64  `db:"warranty_months" json:"warranty_months"`
	ProductID *int64 `db:"product_id" json:"product_id"`
}
