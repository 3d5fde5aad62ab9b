package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TransactionTypeUseCase lectura del catálogo fijo de tipos de movimiento.
type TransactionTypeUseCase struct {
	repo repository.TransactionTypeRepository
}

// NewTransactionTypeUseCase construye el caso de uso.
func NewTransactionTypeUseCase(repo repository.TransactionTypeRepository) *TransactionTypeUseCase {
	return &TransactionTypeUseCase{repo: repo}
}

// List lista todos los tipos de movimiento con su efecto.
func (uc *TransactionTypeUseCase) List(ctx context.Context) ([]*entity.TransactionType, error) {
	return uc.repo.List(ctx)
}

// GetByName obtiene un tipo por nombre.
func (uc *TransactionTypeUseCase) GetByName(ctx context.Context, name string) (*entity.TransactionType, error) {
	t, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}
