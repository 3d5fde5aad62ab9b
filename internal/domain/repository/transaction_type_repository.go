package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// TransactionTypeRepository define el puerto de lectura para los tipos de
// transacción (conjunto de referencia fijo, sembrado en la inicialización).
type TransactionTypeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.TransactionType, error)
	GetByName(ctx context.Context, name string) (*entity.TransactionType, error)
	List(ctx context.Context) ([]*entity.TransactionType, error)
}
