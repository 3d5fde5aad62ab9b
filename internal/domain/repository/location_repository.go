package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	// List devuelve solo ubicaciones activas, ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Location, error)
}
