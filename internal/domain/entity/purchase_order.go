package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. Transiciones unidireccionales salvo draft↔submitted.
const (
	POStatusDraft     = "draft"
	POStatusSubmitted = "submitted"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// TotalAmount se recalcula desde las líneas; nunca se edita directamente.
type PurchaseOrder struct {
	ID                   string
	SupplierID           string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	Status               string
	TotalAmount          decimal.Decimal
	Notes                string
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PurchaseOrderItem es una línea de la orden. LineTotal es una caché de
// Quantity × UnitPrice y se recalcula cada vez que cambia alguno de los dos.
// ReceivedQuantity nunca puede exceder Quantity.
type PurchaseOrderItem struct {
	ID               string
	PurchaseOrderID  string
	ProductID        string
	Quantity         int64
	UnitPrice        decimal.Decimal
	ReceivedQuantity int64
	LineTotal        decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ComputeLineTotal recalcula LineTotal como función pura de sus entradas.
func (it *PurchaseOrderItem) ComputeLineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

// Remaining devuelve la cantidad pendiente por recibir.
func (it *PurchaseOrderItem) Remaining() int64 {
	return it.Quantity - it.ReceivedQuantity
}
