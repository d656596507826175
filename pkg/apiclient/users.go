package apiclient

import (
	"net/http"
	"net/url"
	"strconv"
)

// UsersService operaciones de usuarios (solo admin).
type UsersService struct {
	c *Client
}

// Users devuelve el servicio de usuarios.
func (c *Client) Users() *UsersService { return &UsersService{c: c} }

// Create da de alta un usuario.
func (s *UsersService) Create(in CreateUserRequest) (*User, error) {
	var out User
	if err := s.c.do(http.MethodPost, "/api/users/", in, &out); err != nil {
		return nil, err
	}
	s.c.notifySuccess("Usuario creado correctamente")
	return &out, nil
}

// List lista usuarios paginados.
func (s *UsersService) List(page, limit int) (*Page[User], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/users/"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var out Page[User]
	if err := s.c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
