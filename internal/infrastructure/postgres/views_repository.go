package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ViewsRepository = (*ViewsRepo)(nil)

// ViewsRepo implementa las vistas derivadas como consultas sobre las tablas
// base. No hay vistas materializadas: cada lectura refleja la última
// transacción confirmada.
type ViewsRepo struct {
	q Querier
}

// NewViewsRepository construye el adaptador de lectura. Pasar pool o tx (Querier).
func NewViewsRepository(q Querier) *ViewsRepo {
	return &ViewsRepo{q: q}
}

// CurrentInventory inventario actual con catálogo resuelto. Excluye productos
// inactivos; filtros opcionales por producto y/o ubicación.
func (r *ViewsRepo) CurrentInventory(ctx context.Context, productID, locationID string) ([]repository.CurrentInventoryRow, error) {
	query := `
		SELECT p.id, p.sku, p.name,
		       COALESCE(c.name, ''), COALESCE(s.name, ''),
		       l.id, l.name,
		       i.quantity, p.min_stock_level, p.max_stock_level, p.unit_price, i.last_counted_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN locations l ON l.id = i.location_id
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.is_active`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" AND i.product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	if locationID != "" {
		query += fmt.Sprintf(" AND i.location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += " ORDER BY p.name, l.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("current inventory: %w", err)
	}
	defer rows.Close()
	var list []repository.CurrentInventoryRow
	for rows.Next() {
		var row repository.CurrentInventoryRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.CategoryName,
			&row.SupplierName, &row.LocationID, &row.LocationName, &row.Quantity,
			&row.MinStockLevel, &row.MaxStockLevel, &row.UnitPrice, &row.LastCountedAt); err != nil {
			return nil, fmt.Errorf("scan current inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ReorderList productos activos cuyo stock sumado entre ubicaciones quedó por
// debajo del mínimo, ordenados por déficit descendente.
func (r *ViewsRepo) ReorderList(ctx context.Context) ([]repository.ReorderRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(s.name, ''),
		       COALESCE(SUM(i.quantity), 0) AS total_quantity,
		       p.min_stock_level, p.unit_price
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.is_active
		GROUP BY p.id, p.sku, p.name, s.name, p.min_stock_level, p.unit_price
		HAVING COALESCE(SUM(i.quantity), 0) < p.min_stock_level
		ORDER BY p.min_stock_level - COALESCE(SUM(i.quantity), 0) DESC, p.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reorder list: %w", err)
	}
	defer rows.Close()
	var list []repository.ReorderRow
	for rows.Next() {
		var row repository.ReorderRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.SupplierName,
			&row.TotalQuantity, &row.MinStockLevel, &row.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan reorder row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// RecentTransactions historial con nombres resueltos, fecha descendente y
// desempate por secuencia de inserción.
func (r *ViewsRepo) RecentTransactions(ctx context.Context, filter repository.LedgerFilter) ([]repository.RecentTransactionRow, error) {
	query := `
		SELECT t.id, p.id, p.sku, p.name, l.name, tt.name, tt.affects_inventory,
		       t.quantity, t.transaction_date,
		       COALESCE(t.reference_number, ''), COALESCE(t.notes, ''), COALESCE(t.created_by, '')
		FROM inventory_transactions t
		JOIN products p ON p.id = t.product_id
		JOIN locations l ON l.id = t.location_id
		JOIN transaction_types tt ON tt.id = t.transaction_type_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND t.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND t.location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND t.transaction_date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND t.transaction_date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY t.transaction_date DESC, t.seq DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentTransactionRow
	for rows.Next() {
		var row repository.RecentTransactionRow
		if err := rows.Scan(&row.LedgerID, &row.ProductID, &row.SKU, &row.ProductName,
			&row.LocationName, &row.TransactionType, &row.Effect, &row.Quantity,
			&row.TransactionDate, &row.ReferenceNumber, &row.Notes, &row.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan recent transaction row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// StockLevels niveles por producto+ubicación con filtros opcionales.
func (r *ViewsRepo) StockLevels(ctx context.Context, productID, locationID string) ([]repository.StockLevelRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, l.id, l.name, i.quantity, i.last_counted_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN locations l ON l.id = i.location_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" AND i.product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	if locationID != "" {
		query += fmt.Sprintf(" AND i.location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += " ORDER BY p.name, l.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
	}
	defer rows.Close()
	var list []repository.StockLevelRow
	for rows.Next() {
		var row repository.StockLevelRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.LocationID,
			&row.LocationName, &row.Quantity, &row.LastCountedAt); err != nil {
			return nil, fmt.Errorf("scan stock level row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
