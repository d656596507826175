package apiclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Errores de validación del lado del cliente: se detectan antes de tocar la red.
var (
	// ErrLookupInput número de cliente con menos de 6 dígitos o números no numéricos.
	ErrLookupInput = errors.New("número de cliente (mínimo 6 dígitos) y número de orden son requeridos")
)

// OrdersService operaciones de órdenes.
type OrdersService struct {
	c *Client
}

// Orders devuelve el servicio de órdenes.
func (c *Client) Orders() *OrdersService { return &OrdersService{c: c} }

// List lista órdenes paginadas; status vacío no filtra.
func (s *OrdersService) List(page, limit int, status string) (*Page[Order], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/api/orders/"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var out Page[Order]
	if err := s.c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get obtiene una orden con sus fotos.
func (s *OrdersService) Get(id int64) (*Order, error) {
	var out Order
	if err := s.c.do(http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actions pregunta al servidor qué puede hacer el rol actual sobre la orden.
func (s *OrdersService) Actions(id int64) (*OrderActions, error) {
	var out OrderActions
	if err := s.c.do(http.MethodGet, fmt.Sprintf("/api/orders/%d/actions", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create da de alta una orden (nace en Ordered).
func (s *OrdersService) Create(in CreateOrderRequest) (*Order, error) {
	var out Order
	if err := s.c.do(http.MethodPost, "/api/orders/", in, &out); err != nil {
		return nil, err
	}
	s.c.notifySuccess("Orden creada correctamente")
	return &out, nil
}

// Update avanza el status y/o edita dirección y notas. La orden devuelta es la
// autoritativa del servidor; la pantalla se repinta con ella, no con la local.
func (s *OrdersService) Update(id int64, in UpdateOrderRequest) (*Order, error) {
	var out Order
	if err := s.c.do(http.MethodPut, fmt.Sprintf("/api/orders/%d", id), in, &out); err != nil {
		return nil, err
	}
	s.c.notifySuccess("Orden actualizada correctamente")
	return &out, nil
}

// UploadImage adjunta una foto (multipart, campo "image").
func (s *OrdersService) UploadImage(id int64, filename string, file io.Reader) (*Order, error) {
	var out Order
	if err := s.c.upload(fmt.Sprintf("/api/orders/upload/%d", id), filename, file, &out); err != nil {
		return nil, err
	}
	s.c.notifySuccess("Foto agregada correctamente")
	return &out, nil
}

// Lookup consulta pública sin sesión. Valida localmente antes de llamar:
// número de cliente con al menos 6 dígitos y número de orden numérico.
func (s *OrdersService) Lookup(customerNumber, orderID string) (*Order, error) {
	if len(customerNumber) < 6 || !allDigits(customerNumber) || !allDigits(orderID) {
		return nil, ErrLookupInput
	}
	var out Order
	path := "/api/orders/" + url.PathEscape(customerNumber) + "/" + url.PathEscape(orderID)
	if err := s.c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeliveryNote descarga la nota de entrega en PDF.
func (s *OrdersService) DeliveryNote(id int64) ([]byte, error) {
	var out []byte
	if err := s.c.do(http.MethodGet, fmt.Sprintf("/api/orders/%d/pdf", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
