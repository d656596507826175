package dto

import "time"

// CreateCustomerRequest alta de cliente. Phone llega con 10 dígitos y se
// normaliza a +52 en el caso de uso antes de persistir.
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	FiscalData string `json:"fiscalData"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID             int64     `json:"id"`
	CustomerNumber string    `json:"customerNumber"`
	Name           string    `json:"name"`
	FiscalData     string    `json:"fiscalData"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Deleted        bool      `json:"deleted"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CustomerOption entrada mínima del typeahead de clientes.
type CustomerOption struct {
	CustomerNumber string `json:"customerNumber"`
	Name           string `json:"name"`
}
