package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de movimientos sobre PostgreSQL.
// Append-only: no hay UPDATE ni DELETE sobre inventory_transactions.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append persiste un registro del libro. seq es la secuencia de inserción que
// desempata el orden a igual transaction_date.
func (r *LedgerRepo) Append(ctx context.Context, record *entity.LedgerRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_transactions (id, product_id, location_id, transaction_type_id, quantity, transaction_date, reference_number, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	createdBy := (*string)(nil)
	if record.CreatedBy != "" {
		createdBy = &record.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		record.ID, record.ProductID, record.LocationID, record.TransactionTypeID,
		record.Quantity, record.TransactionDate, nullIfEmpty(record.ReferenceNumber),
		nullIfEmpty(record.Notes), createdBy, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *LedgerRepo) GetByID(ctx context.Context, id string) (*entity.LedgerRecord, error) {
	query := `
		SELECT id, product_id, location_id, transaction_type_id, quantity, transaction_date,
		       COALESCE(reference_number, ''), COALESCE(notes, ''), COALESCE(created_by, ''), created_at
		FROM inventory_transactions WHERE id = $1`
	var rec entity.LedgerRecord
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.ProductID, &rec.LocationID, &rec.TransactionTypeID, &rec.Quantity,
		&rec.TransactionDate, &rec.ReferenceNumber, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger record: %w", err)
	}
	return &rec, nil
}

// List lista registros del libro con filtros opcionales, más recientes primero
// (empates por secuencia de inserción).
func (r *LedgerRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.LedgerRecord, error) {
	query := `
		SELECT id, product_id, location_id, transaction_type_id, quantity, transaction_date,
		       COALESCE(reference_number, ''), COALESCE(notes, ''), COALESCE(created_by, ''), created_at
		FROM inventory_transactions WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, seq DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger records: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerRecord
	for rows.Next() {
		var rec entity.LedgerRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.LocationID, &rec.TransactionTypeID,
			&rec.Quantity, &rec.TransactionDate, &rec.ReferenceNumber, &rec.Notes,
			&rec.CreatedBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
