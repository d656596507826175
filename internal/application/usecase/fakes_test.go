package usecase_test

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tu-usuario/logistica-api/internal/application/usecase"
	"github.com/tu-usuario/logistica-api/internal/domain"
	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	"github.com/tu-usuario/logistica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]*entity.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	order.ID = r.nextID
	r.nextID++
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Images = append([]entity.OrderImage(nil), o.Images...)
	return &cp, nil
}

func (r *fakeOrderRepo) GetByCustomerAndID(customerNumber string, id int64) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.CustomerNumber != customerNumber {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.Order, int, error) {
	var all []*entity.Order
	for _, o := range r.orders {
		if o.Deleted {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeOrderRepo) Update(order *entity.Order) error {
	existing, ok := r.orders[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	images := existing.Images
	cp := *order
	cp.Images = images
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) AddImage(image *entity.OrderImage) error {
	o, ok := r.orders[image.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	image.ID = int64(len(o.Images) + 1)
	o.Images = append(o.Images, *image)
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*entity.Customer), nextID: 1}
}

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error {
	for _, c := range r.customers {
		if c.CustomerNumber == customer.CustomerNumber {
			return domain.ErrDuplicate
		}
	}
	customer.ID = r.nextID
	r.nextID++
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByCustomerNumber(customerNumber string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.CustomerNumber == customerNumber {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, int, error) {
	var all []*entity.Customer
	for _, c := range r.customers {
		if !c.Deleted {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// Search compara el nombre normalizado (sin acentos ni mayúsculas), igual
// que hace el almacén real con el término ya normalizado.
func (r *fakeCustomerRepo) Search(term string, limit int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if strings.Contains(usecase.NormalizeSearchTerm(c.Name), term) ||
			strings.HasPrefix(c.CustomerNumber, term) {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeTx ejecuta el callback contra el mismo repo, sin transacción real.
type fakeTx struct {
	repo repository.OrderRepository
}

func (t *fakeTx) Run(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(t.repo)
}

// fakeStorage guarda nombres y devuelve URLs predecibles.
type fakeStorage struct {
	saved []string
}

func (s *fakeStorage) Save(originalName string, _ io.Reader) (string, error) {
	s.saved = append(s.saved, originalName)
	return fmt.Sprintf("/uploads/%d-%s", len(s.saved), originalName), nil
}

// fakePDF devuelve bytes fijos.
type fakePDF struct{}

func (fakePDF) GenerateDeliveryNote(_ context.Context, _ *entity.Order, _ *entity.Customer) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}
