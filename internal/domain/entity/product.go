package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-ubicación).
// El SKU es inmutable una vez asignado; precio y umbrales de stock son mutables.
// El stock se maneja por ubicación en StockEntry, derivado del libro de movimientos.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	CategoryID    string
	SupplierID    string
	UnitPrice     decimal.Decimal // precio unitario, 2 decimales
	MinStockLevel int64
	MaxStockLevel *int64 // nil = sin máximo configurado
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
