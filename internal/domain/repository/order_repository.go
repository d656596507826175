package repository

import "github.com/tu-usuario/logistica-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Las lecturas devuelven la orden con sus imágenes ya cargadas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	// GetByCustomerAndID búsqueda pública: número de cliente + id de orden.
	GetByCustomerAndID(customerNumber string, id int64) (*entity.Order, error)
	// List pagina las órdenes no eliminadas; status vacío no filtra.
	// Devuelve la página y el total de registros que cumplen el filtro.
	List(status string, limit, offset int) ([]*entity.Order, int, error)
	Update(order *entity.Order) error
	AddImage(image *entity.OrderImage) error
}
