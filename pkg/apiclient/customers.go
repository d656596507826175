package apiclient

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tu-usuario/logistica-api/pkg/phone"
)

// MinSearchLen caracteres mínimos para disparar el typeahead.
const MinSearchLen = 2

// ErrSearchTooShort término de búsqueda menor al mínimo.
var ErrSearchTooShort = errors.New("la búsqueda requiere al menos 2 caracteres")

// CustomersService operaciones de clientes.
type CustomersService struct {
	c *Client
}

// Customers devuelve el servicio de clientes.
func (c *Client) Customers() *CustomersService { return &CustomersService{c: c} }

// Create da de alta un cliente (solo admin). El teléfono se valida y normaliza
// a +52 antes de enviar; diez dígitos exactos.
func (s *CustomersService) Create(in CreateCustomerRequest) (*Customer, error) {
	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		return nil, err
	}
	in.Phone = normalized
	var out Customer
	if err := s.c.do(http.MethodPost, "/api/customers/", in, &out); err != nil {
		return nil, err
	}
	s.c.notifySuccess("Cliente creado correctamente")
	return &out, nil
}

// List lista clientes paginados.
func (s *CustomersService) List(page, limit int) (*Page[Customer], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/customers/"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var out Page[Customer]
	if err := s.c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get obtiene un cliente por su número.
func (s *CustomersService) Get(customerNumber string) (*Customer, error) {
	var out Customer
	if err := s.c.do(http.MethodGet, "/api/customers/"+url.PathEscape(customerNumber), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search typeahead de clientes: mínimo 2 caracteres, máximo 10 opciones.
func (s *CustomersService) Search(term string) ([]CustomerOption, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < MinSearchLen {
		return nil, ErrSearchTooShort
	}
	var out []CustomerOption
	path := "/api/customers/?search=" + url.QueryEscape(term)
	if err := s.c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
