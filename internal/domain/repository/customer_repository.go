package repository

import "github.com/tu-usuario/logistica-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByCustomerNumber(customerNumber string) (*entity.Customer, error)
	// List pagina los clientes no eliminados; devuelve página y total.
	List(limit, offset int) ([]*entity.Customer, int, error)
	// Search busca por nombre o número de cliente (término ya normalizado).
	Search(term string, limit int) ([]*entity.Customer, error)
}
