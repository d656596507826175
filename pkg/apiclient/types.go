package apiclient

import "time"

// Tipos de wire de la API. El SDK define los suyos para que los consumidores
// externos no dependan de paquetes internal del servidor.

// User usuario autenticado.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderImage foto adjunta de una orden.
type OrderImage struct {
	ID          int64     `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"` // loaded | unloaded
	OrderID     int64     `json:"orderId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Order orden con sus fotos.
type Order struct {
	ID              int64        `json:"id"`
	Status          string       `json:"status"`
	DeliveryAddress string       `json:"deliveryAddress"`
	CustomerNumber  string       `json:"customerNumber"`
	Notes           string       `json:"notes"`
	Deleted         bool         `json:"deleted"`
	Images          []OrderImage `json:"images"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// OrderActions decisión del servidor sobre qué puede hacer el rol actual.
type OrderActions struct {
	AdvanceVisible     bool   `json:"advanceVisible"`
	ActionLabel        string `json:"actionLabel"`
	ImageActionVisible bool   `json:"imageActionVisible"`
	ImageLabel         string `json:"imageLabel"`
}

// Customer cliente.
type Customer struct {
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

// CustomerOption entrada del typeahead de clientes.
type CustomerOption struct {
	CustomerNumber string `json:"customerNumber"`
	Name           string `json:"name"`
}

// Page listado paginado. Data se decodifica según el servicio.
type Page[T any] struct {
	Data       []T `json:"data"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// LoginResponse salida de login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateOrderRequest alta de orden.
type CreateOrderRequest struct {
	CustomerNumber  string `json:"customerNumber"`
	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`
}

// UpdateOrderRequest avance de status y/o edición de dirección y notas.
type UpdateOrderRequest struct {
	Status          string  `json:"status,omitempty"`
	DeliveryAddress *string `json:"deliveryAddress,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// CreateCustomerRequest alta de cliente. Phone con 10 dígitos.
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	FiscalData string `json:"fiscalData"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// CreateUserRequest alta de usuario.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
