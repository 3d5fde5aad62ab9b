package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no se expone actualización ni borrado.
type LedgerRepository interface {
	Append(ctx context.Context, record *entity.LedgerRecord) error
	GetByID(ctx context.Context, id string) (*entity.LedgerRecord, error)
	List(ctx context.Context, filter LedgerFilter) ([]*entity.LedgerRecord, error)
}

// LedgerFilter filtros opcionales para consultar el historial de movimientos.
type LedgerFilter struct {
	ProductID  string
	LocationID string
	From       *time.Time
	To         *time.Time
	Limit      int
}
