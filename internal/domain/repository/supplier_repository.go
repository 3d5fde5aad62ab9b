package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	// List devuelve solo proveedores activos, ordenados por nombre.
	List(ctx context.Context) ([]*entity.Supplier, error)
}
