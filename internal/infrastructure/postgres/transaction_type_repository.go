package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.TransactionTypeRepository = (*TransactionTypeRepo)(nil)

// TransactionTypeRepo lectura de los tipos de transacción (referencia fija,
// sembrada por la migración 002).
type TransactionTypeRepo struct {
	q Querier
}

// NewTransactionTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionTypeRepository(q Querier) *TransactionTypeRepo {
	return &TransactionTypeRepo{q: q}
}

// GetByID obtiene un tipo por ID.
func (r *TransactionTypeRepo) GetByID(ctx context.Context, id string) (*entity.TransactionType, error) {
	return r.get(ctx, `SELECT id, name, affects_inventory, COALESCE(description, '') FROM transaction_types WHERE id = $1`, id)
}

// GetByName obtiene un tipo por nombre (Purchase, Sale, ...).
func (r *TransactionTypeRepo) GetByName(ctx context.Context, name string) (*entity.TransactionType, error) {
	return r.get(ctx, `SELECT id, name, affects_inventory, COALESCE(description, '') FROM transaction_types WHERE name = $1`, name)
}

func (r *TransactionTypeRepo) get(ctx context.Context, query, arg string) (*entity.TransactionType, error) {
	var t entity.TransactionType
	err := r.q.QueryRow(ctx, query, arg).Scan(&t.ID, &t.Name, &t.AffectsInventory, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction type: %w", err)
	}
	return &t, nil
}

// List lista todos los tipos ordenados por nombre.
func (r *TransactionTypeRepo) List(ctx context.Context) ([]*entity.TransactionType, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, affects_inventory, COALESCE(description, '') FROM transaction_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list transaction types: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionType
	for rows.Next() {
		var t entity.TransactionType
		if err := rows.Scan(&t.ID, &t.Name, &t.AffectsInventory, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
