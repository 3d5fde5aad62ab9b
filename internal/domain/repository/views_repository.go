package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CurrentInventoryRow fila cruda para la vista de inventario actual
// (StockEntry unido con producto, categoría, proveedor y ubicación).
type CurrentInventoryRow struct {
	ProductID     string
	SKU           string
	ProductName   string
	CategoryName  string
	SupplierName  string
	LocationID    string
	LocationName  string
	Quantity      int64
	MinStockLevel int64
	MaxStockLevel *int64
	UnitPrice     decimal.Decimal
	LastCountedAt *time.Time
}

// ReorderRow fila cruda para la lista de reorden: producto activo cuyo stock
// sumado entre todas las ubicaciones es estrictamente menor a su mínimo.
type ReorderRow struct {
	ProductID     string
	SKU           string
	ProductName   string
	SupplierName  string
	TotalQuantity int64
	MinStockLevel int64
	UnitPrice     decimal.Decimal
}

// RecentTransactionRow fila cruda del historial de movimientos, con los
// nombres resueltos de producto, ubicación y tipo.
type RecentTransactionRow struct {
	LedgerID        string
	ProductID       string
	SKU             string
	ProductName     string
	LocationName    string
	TransactionType string
	Effect          int
	Quantity        int64
	TransactionDate time.Time
	ReferenceNumber string
	Notes           string
	CreatedBy       string
}

// StockLevelRow fila cruda de niveles de stock por producto+ubicación.
type StockLevelRow struct {
	ProductID     string
	SKU           string
	ProductName   string
	LocationID    string
	LocationName  string
	Quantity      int64
	LastCountedAt *time.Time
}

// ViewsRepository define el puerto de lectura para las vistas derivadas.
// Son proyecciones puras sobre StockEntry + Ledger + catálogo, sin estado propio:
// el resultado siempre es consistente con la última transacción confirmada.
type ViewsRepository interface {
	// CurrentInventory excluye productos inactivos. Filtros opcionales por
	// producto y/o ubicación (vacío = sin filtro).
	CurrentInventory(ctx context.Context, productID, locationID string) ([]CurrentInventoryRow, error)
	// ReorderList solo productos activos con déficit, ordenados por cantidad a
	// pedir descendente.
	ReorderList(ctx context.Context) ([]ReorderRow, error)
	// RecentTransactions ordena por fecha descendente y, a igual fecha, por
	// orden de inserción en el libro (más reciente primero).
	RecentTransactions(ctx context.Context, filter LedgerFilter) ([]RecentTransactionRow, error)
	// StockLevels niveles por producto+ubicación con filtros opcionales.
	StockLevels(ctx context.Context, productID, locationID string) ([]StockLevelRow, error)
}
