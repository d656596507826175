package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	"github.com/tu-usuario/logistica-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden nueva y asigna el ID generado.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (status, delivery_address, customer_number, notes, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.Status, order.DeliveryAddress, order.CustomerNumber, order.Notes,
		order.Deleted, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID con sus fotos.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `
		SELECT id, status, delivery_address, customer_number, notes, deleted, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Status, &o.DeliveryAddress, &o.CustomerNumber, &o.Notes,
		&o.Deleted, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadImages(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByCustomerAndID búsqueda pública: número de cliente + id de orden.
func (r *OrderRepo) GetByCustomerAndID(customerNumber string, id int64) (*entity.Order, error) {
	query := `
		SELECT id, status, delivery_address, customer_number, notes, deleted, created_at, updated_at
		FROM orders WHERE id = $1 AND customer_number = $2 AND NOT deleted`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id, customerNumber).Scan(
		&o.ID, &o.Status, &o.DeliveryAddress, &o.CustomerNumber, &o.Notes,
		&o.Deleted, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by customer: %w", err)
	}
	if err := r.loadImages(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// List pagina las órdenes no eliminadas; status vacío no filtra.
func (r *OrderRepo) List(status string, limit, offset int) ([]*entity.Order, int, error) {
	var total int
	countQuery := `
		SELECT count(*) FROM orders
		WHERE NOT deleted AND ($1 = '' OR status = $1)`
	if err := r.q.QueryRow(context.Background(), countQuery, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := `
		SELECT id, status, delivery_address, customer_number, notes, deleted, created_at, updated_at
		FROM orders
		WHERE NOT deleted AND ($1 = '' OR status = $1)
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Status, &o.DeliveryAddress, &o.CustomerNumber, &o.Notes,
			&o.Deleted, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, o := range list {
		if err := r.loadImages(o); err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

// Update actualiza status, dirección, notas y updated_at.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, delivery_address = $3, notes = $4, deleted = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.DeliveryAddress, order.Notes, order.Deleted, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// AddImage persiste una foto de la orden y asigna el ID generado.
func (r *OrderRepo) AddImage(image *entity.OrderImage) error {
	query := `
		INSERT INTO order_images (order_id, image_url, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		image.OrderID, image.ImageURL, image.Description, image.CreatedAt, image.UpdatedAt,
	).Scan(&image.ID)
	if err != nil {
		return fmt.Errorf("insert order image: %w", err)
	}
	return nil
}

// loadImages carga las fotos de la orden en orden de inserción.
func (r *OrderRepo) loadImages(o *entity.Order) error {
	query := `
		SELECT id, order_id, image_url, description, created_at, updated_at
		FROM order_images WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return fmt.Errorf("list order images: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var img entity.OrderImage
		if err := rows.Scan(&img.ID, &img.OrderID, &img.ImageURL, &img.Description,
			&img.CreatedAt, &img.UpdatedAt); err != nil {
			return fmt.Errorf("scan order image: %w", err)
		}
		o.Images = append(o.Images, img)
	}
	return rows.Err()
}
