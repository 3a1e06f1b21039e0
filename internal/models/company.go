package models

// Company matches the companies table.
type Company struct {
	ID     int64  `db:"company_id" json:"company_id"`
	Name   string `db:"company_name" json:"company_name"`
	Active bool   `db:"active" json:"active"`
}
