package entity

import "time"

// User usuario del sistema. Role gobierna la visibilidad de pantallas y
// acciones; el conjunto válido vive en pkg/workflow.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, sales, purchasing, warehouse, route
	Deleted      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
