package entity

import "time"

// Customer cliente del negocio. CustomerNumber es el número público con el que
// el cliente consulta sus órdenes; Phone se guarda ya normalizado (+52 y 10 dígitos).
type Customer struct {
	ID             int64
	CustomerNumber string
	Name           string
	FiscalData     string
	Address        string
	Phone          string
	Deleted        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
