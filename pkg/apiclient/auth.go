package apiclient

import (
	"errors"
	"net/http"
)

// ErrNotAuthenticated no hay sesión vigente.
var ErrNotAuthenticated = errors.New("no hay sesión iniciada")

// Login autentica y guarda la sesión. Con remember la sesión va al alcance
// persistente y sobrevive al proceso.
func (c *Client) Login(email, password string, remember bool) (*LoginResponse, error) {
	var out LoginResponse
	err := c.do(http.MethodPost, "/api/auth/login", map[string]any{
		"email":      email,
		"password":   password,
		"rememberMe": remember,
	}, &out)
	if err != nil {
		return nil, err
	}
	if err := c.session.Save(out.Token, out.User, remember); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register registra un usuario nuevo (endpoint público). No inicia sesión.
func (c *Client) Register(in CreateUserRequest) (*User, error) {
	var out User
	if err := c.do(http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout descarta la sesión de ambos alcances.
func (c *Client) Logout() {
	c.session.Clear()
}
