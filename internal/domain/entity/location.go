package entity

import "time"

// Location representa una bodega o ubicación física donde se almacena inventario.
type Location struct {
	ID          string
	Name        string // único
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
