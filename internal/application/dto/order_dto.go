package dto

import "time"

// CreateOrderRequest alta de orden. Solo customerNumber es obligatorio;
// la orden nace en status Ordered.
type CreateOrderRequest struct {
	CustomerNumber  string `json:"customerNumber"`
	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`
}

// UpdateOrderRequest actualización de orden. Status solo puede ser el sucesor
// lineal del actual y la política de workflow decide si el rol puede avanzarla.
type UpdateOrderRequest struct {
	Status          string  `json:"status"`
	DeliveryAddress *string `json:"deliveryAddress"`
	Notes           *string `json:"notes"`
}

// OrderImageResponse foto adjunta de una orden.
type OrderImageResponse struct {
	ID          int64     `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"` // loaded | unloaded
	OrderID     int64     `json:"orderId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderResponse salida de una orden con sus fotos.
type OrderResponse struct {
	ID              int64                `json:"id"`
	Status          string               `json:"status"`
	DeliveryAddress string               `json:"deliveryAddress"`
	CustomerNumber  string               `json:"customerNumber"`
	Notes           string               `json:"notes"`
	Deleted         bool                 `json:"deleted"`
	Images          []OrderImageResponse `json:"images"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// OrderActionsResponse decisión de la política para el rol del token:
// qué acción de avance (si alguna) y si procede adjuntar foto.
type OrderActionsResponse struct {
	AdvanceVisible     bool   `json:"advanceVisible"`
	ActionLabel        string `json:"actionLabel,omitempty"`
	ImageActionVisible bool   `json:"imageActionVisible"`
	ImageLabel         string `json:"imageLabel,omitempty"`
}
