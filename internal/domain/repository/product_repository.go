package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// Update no permite modificar el SKU (inmutable una vez asignado).
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// Search busca por nombre o SKU (ILIKE) solo productos activos.
	Search(ctx context.Context, pattern string, limit int) ([]*entity.Product, error)
	Deactivate(ctx context.Context, id string) error
}
