package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const poColumns = `id, supplier_id, order_date, expected_delivery_date, status, total_amount,
	COALESCE(notes, ''), COALESCE(created_by, ''), created_at, updated_at`

const poItemColumns = `id, purchase_order_id, product_id, quantity, unit_price, received_quantity, line_total, created_at, updated_at`

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create inserta la orden y todas sus líneas. Debe ejecutarse dentro de una
// transacción para que orden y líneas sean atómicas.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_orders (id, supplier_id, order_date, expected_delivery_date, status, total_amount, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SupplierID, order.OrderDate, order.ExpectedDeliveryDate,
		order.Status, order.TotalAmount, nullIfEmpty(order.Notes), nullIfEmpty(order.CreatedBy),
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	itemQuery := `
		INSERT INTO purchase_order_items (id, purchase_order_id, product_id, quantity, unit_price, received_quantity, line_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, it := range items {
		_, err := r.q.Exec(ctx, itemQuery,
			it.ID, it.PurchaseOrderID, it.ProductID, it.Quantity, it.UnitPrice,
			it.ReceivedQuantity, it.LineTotal, it.CreatedAt, it.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden (sin líneas; usar ListItems).
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	o, err := scanPurchaseOrder(r.q.QueryRow(ctx,
		`SELECT `+poColumns+` FROM purchase_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return o, nil
}

// ListItems lista las líneas de una orden en orden de creación.
func (r *PurchaseOrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.PurchaseOrderItem, error) {
	query := `SELECT ` + poItemColumns + ` FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := scanPOItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetItemByID obtiene una línea por ID.
func (r *PurchaseOrderRepo) GetItemByID(ctx context.Context, itemID string) (*entity.PurchaseOrderItem, error) {
	return r.getItem(ctx, `SELECT `+poItemColumns+` FROM purchase_order_items WHERE id = $1`, itemID)
}

// GetItemForUpdate bloquea la línea con SELECT FOR UPDATE. Recepciones
// concurrentes contra la misma línea quedan serializadas por este lock.
func (r *PurchaseOrderRepo) GetItemForUpdate(ctx context.Context, itemID string) (*entity.PurchaseOrderItem, error) {
	return r.getItem(ctx, `SELECT `+poItemColumns+` FROM purchase_order_items WHERE id = $1 FOR UPDATE`, itemID)
}

func (r *PurchaseOrderRepo) getItem(ctx context.Context, query, itemID string) (*entity.PurchaseOrderItem, error) {
	var it entity.PurchaseOrderItem
	if err := scanPOItem(r.q.QueryRow(ctx, query, itemID), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order item: %w", err)
	}
	return &it, nil
}

// UpdateItem persiste cantidad recibida y line_total recalculado.
func (r *PurchaseOrderRepo) UpdateItem(ctx context.Context, item *entity.PurchaseOrderItem) error {
	query := `
		UPDATE purchase_order_items
		SET quantity = $2, unit_price = $3, received_quantity = $4, line_total = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Quantity, item.UnitPrice, item.ReceivedQuantity, item.LineTotal, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order item: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`, orderID, status)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// UpdateTotal persiste el total recalculado desde las líneas.
func (r *PurchaseOrderRepo) UpdateTotal(ctx context.Context, orderID string, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE purchase_orders SET total_amount = $2, updated_at = now() WHERE id = $1`, orderID, total)
	if err != nil {
		return fmt.Errorf("update purchase order total: %w", err)
	}
	return nil
}

// List lista órdenes, opcionalmente filtradas por estado, más recientes primero.
func (r *PurchaseOrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY order_date DESC, created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDeliveryDate, &o.Status,
			&o.TotalAmount, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDeliveryDate, &o.Status,
		&o.TotalAmount, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanPOItem(row pgx.Row, it *entity.PurchaseOrderItem) error {
	return row.Scan(&it.ID, &it.PurchaseOrderID, &it.ProductID, &it.Quantity, &it.UnitPrice,
		&it.ReceivedQuantity, &it.LineTotal, &it.CreatedAt, &it.UpdatedAt)
}
