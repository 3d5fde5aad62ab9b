package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyTransactionRequest body para POST /api/inventory/transactions.
// Quantity siempre es una magnitud positiva; la dirección la define el tipo.
type ApplyTransactionRequest struct {
	ProductID       string `json:"product_id"`
	LocationID      string `json:"location_id"`
	TransactionType string `json:"transaction_type"` // Purchase, Sale, Adjustment, ...
	Quantity        int64  `json:"quantity"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedBy       string `json:"created_by,omitempty"`
}

// LedgerRecordResponse representación HTTP de un registro del libro.
type LedgerRecordResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	LocationID        string    `json:"location_id"`
	TransactionTypeID string    `json:"transaction_type_id"`
	Quantity          int64     `json:"quantity"`
	TransactionDate   time.Time `json:"transaction_date"`
	ReferenceNumber   string    `json:"reference_number,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedBy         string    `json:"created_by,omitempty"`
}

// StockCountRequest body para POST /api/inventory/counts. CountedQuantity es
// la cantidad absoluta contada en estantería, no un delta.
type StockCountRequest struct {
	ProductID       string `json:"product_id"`
	LocationID      string `json:"location_id"`
	CountedQuantity int64  `json:"counted_quantity"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedBy       string `json:"created_by,omitempty"`
}

// StockCountResponse resultado de un conteo físico. LedgerRecordID queda vacío
// cuando el conteo coincidió con el sistema y no hubo asiento.
type StockCountResponse struct {
	ProductID      string     `json:"product_id"`
	LocationID     string     `json:"location_id"`
	Quantity       int64      `json:"quantity"`
	LastCountedAt  *time.Time `json:"last_counted_at"`
	LedgerRecordID string     `json:"ledger_record_id,omitempty"`
}

// CurrentInventoryItemDTO fila de la vista de inventario actual.
type CurrentInventoryItemDTO struct {
	ProductID      string          `json:"product_id"`
	SKU            string          `json:"sku"`
	ProductName    string          `json:"product_name"`
	CategoryName   string          `json:"category_name,omitempty"`
	SupplierName   string          `json:"supplier_name,omitempty"`
	LocationName   string          `json:"location_name"`
	Quantity       int64           `json:"quantity"`
	MinStockLevel  int64           `json:"min_stock_level"`
	MaxStockLevel  *int64          `json:"max_stock_level,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	InventoryValue decimal.Decimal `json:"inventory_value"` // unit_price × quantity
	StockStatus    string          `json:"stock_status"`    // Low Stock | Optimal | Overstocked
	LastCountedAt  *time.Time      `json:"last_counted_at,omitempty"`
}

// ReorderItemDTO fila de la lista de reorden.
type ReorderItemDTO struct {
	ProductID       string          `json:"product_id"`
	SKU             string          `json:"sku"`
	ProductName     string          `json:"product_name"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	TotalQuantity   int64           `json:"total_quantity"`
	MinStockLevel   int64           `json:"min_stock_level"`
	QuantityToOrder int64           `json:"quantity_to_order"` // siempre > 0
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`    // quantity_to_order × unit_price
}

// TransactionHistoryItemDTO fila del historial de movimientos recientes.
type TransactionHistoryItemDTO struct {
	LedgerID        string    `json:"ledger_id"`
	SKU             string    `json:"sku"`
	ProductName     string    `json:"product_name"`
	LocationName    string    `json:"location_name"`
	TransactionType string    `json:"transaction_type"`
	Effect          int       `json:"effect"`
	Quantity        int64     `json:"quantity"`
	TransactionDate time.Time `json:"transaction_date"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
}

// StockLevelDTO nivel de stock por producto+ubicación.
type StockLevelDTO struct {
	ProductID     string     `json:"product_id"`
	SKU           string     `json:"sku"`
	ProductName   string     `json:"product_name"`
	LocationID    string     `json:"location_id"`
	LocationName  string     `json:"location_name"`
	Quantity      int64      `json:"quantity"`
	LastCountedAt *time.Time `json:"last_counted_at,omitempty"`
}

// TransactionHistoryQuery filtros para GET /api/inventory/transactions.
type TransactionHistoryQuery struct {
	ProductID  string     `query:"product_id"`
	LocationID string     `query:"location_id"`
	From       *time.Time `query:"from"`
	To         *time.Time `query:"to"`
	Limit      int        `query:"limit"`
}
