package entity

import "time"

// Order orden de entrega de un cliente. El status avanza de forma lineal
// (Ordered → In Process → In route → Delivered) según la política de workflow.
type Order struct {
	ID              int64
	Status          string
	DeliveryAddress string
	CustomerNumber  string
	Notes           string
	Deleted         bool
	Images          []OrderImage // 0..2: foto de carga y foto de descarga
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderImage foto adjunta a una orden. Description es "loaded" para la foto
// de carga y "unloaded" para la de descarga.
type OrderImage struct {
	ID          int64
	OrderID     int64
	ImageURL    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
