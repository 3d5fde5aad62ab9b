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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación.
func (r *StockRepo) Get(ctx context.Context, productID, locationID string) (*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, location_id, quantity, last_counted_at, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND location_id = $2`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&s.ID, &s.ProductID, &s.LocationID, &s.Quantity, &s.LastCountedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{ProductID: productID, LocationID: locationID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE). Si la
// fila no existe la materializa primero en cero y vuelve a seleccionar: un
// SELECT FOR UPDATE sobre una fila inexistente no bloquea nada, y dos primeros
// movimientos concurrentes hacia el mismo par leerían ambos cantidad 0 y el
// segundo en confirmar pisaría la escritura del primero.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, locationID string) (*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, location_id, quantity, last_counted_at, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.StockEntry
	lock := func() error {
		return r.q.QueryRow(ctx, query, productID, locationID).Scan(
			&s.ID, &s.ProductID, &s.LocationID, &s.Quantity, &s.LastCountedAt, &s.CreatedAt, &s.UpdatedAt,
		)
	}
	err := lock()
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO inventory (id, product_id, location_id, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, 0, now(), now())
			ON CONFLICT (product_id, location_id) DO NOTHING`
		if _, insErr := r.q.Exec(ctx, insert, uuid.New().String(), productID, locationID); insErr != nil {
			return nil, fmt.Errorf("init stock row: %w", insErr)
		}
		// Ya existe una fila (la nuestra o la de otra transacción): esta vez el
		// SELECT FOR UPDATE sí bloquea.
		err = lock()
	}
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en inventory (por producto y ubicación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.StockEntry) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory (id, product_id, location_id, quantity, last_counted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_counted_at = EXCLUDED.last_counted_at, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.ID, stock.ProductID, stock.LocationID, stock.Quantity, stock.LastCountedAt)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// SumByProduct suma el stock de un producto entre todas las ubicaciones.
func (r *StockRepo) SumByProduct(ctx context.Context, productID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM inventory WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum stock by product: %w", err)
	}
	return total, nil
}
