package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por
// producto+ubicación. Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(ctx context.Context, productID, locationID string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Si no existe,
	// devuelve una entrada con cantidad 0 lista para crearse en el primer Upsert.
	GetForUpdate(ctx context.Context, productID, locationID string) (*entity.StockEntry, error)
	Upsert(ctx context.Context, stock *entity.StockEntry) error
	// SumByProduct suma la cantidad de un producto entre todas las ubicaciones.
	SumByProduct(ctx context.Context, productID string) (int64, error)
}
