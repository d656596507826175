package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/logistica-api/internal/domain"
	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	"github.com/tu-usuario/logistica-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo y asigna el ID generado.
// Devuelve ErrDuplicate si el número de cliente ya existe.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (customer_number, name, fiscal_data, address, phone, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		customer.CustomerNumber, customer.Name, customer.FiscalData, customer.Address,
		customer.Phone, customer.Deleted,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `
		SELECT id, customer_number, name, fiscal_data, address, phone, deleted, created_at, updated_at
		FROM customers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get customer")
}

// GetByCustomerNumber obtiene un cliente por su número público.
func (r *CustomerRepo) GetByCustomerNumber(customerNumber string) (*entity.Customer, error) {
	query := `
		SELECT id, customer_number, name, fiscal_data, address, phone, deleted, created_at, updated_at
		FROM customers WHERE customer_number = $1 AND NOT deleted`
	return r.scanOne(r.q.QueryRow(context.Background(), query, customerNumber), "get customer by number")
}

// List pagina los clientes no eliminados y devuelve el total.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM customers WHERE NOT deleted`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	query := `
		SELECT id, customer_number, name, fiscal_data, address, phone, deleted, created_at, updated_at
		FROM customers WHERE NOT deleted ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	list, err := scanCustomers(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca por nombre (sin acentos, sin mayúsculas) o por prefijo del
// número de cliente. El término llega ya normalizado desde el caso de uso;
// el nombre almacenado se normaliza con el mismo criterio al comparar, para
// que "jose" encuentre a "José".
func (r *CustomerRepo) Search(term string, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT id, customer_number, name, fiscal_data, address, phone, deleted, created_at, updated_at
		FROM customers
		WHERE NOT deleted
		  AND (translate(lower(name), 'áéíóúüñ', 'aeiouun') LIKE '%' || $1 || '%'
		       OR customer_number LIKE $1 || '%')
		ORDER BY name LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func (r *CustomerRepo) scanOne(row pgx.Row, op string) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.CustomerNumber, &c.Name, &c.FiscalData, &c.Address,
		&c.Phone, &c.Deleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func scanCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CustomerNumber, &c.Name, &c.FiscalData, &c.Address,
			&c.Phone, &c.Deleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
