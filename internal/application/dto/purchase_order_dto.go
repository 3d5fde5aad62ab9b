package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
// La orden se crea en estado draft; total y line_total se calculan de las líneas.
type CreatePurchaseOrderRequest struct {
	SupplierID           string                    `json:"supplier_id"`
	ExpectedDeliveryDate *time.Time                `json:"expected_delivery_date,omitempty"`
	Notes                string                    `json:"notes,omitempty"`
	CreatedBy            string                    `json:"created_by,omitempty"`
	Items                []PurchaseOrderItemInput  `json:"items"`
}

// PurchaseOrderItemInput línea de la orden al crearla.
type PurchaseOrderItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ReceiveLineItemRequest body para POST /api/purchase-orders/items/:itemId/receive.
type ReceiveLineItemRequest struct {
	ReceivedAmount int64  `json:"received_amount"`
	LocationID     string `json:"location_id"` // ubicación destino del movimiento Purchase
	CreatedBy      string `json:"created_by,omitempty"`
}

// PurchaseOrderResponse representación HTTP de una orden con sus líneas.
type PurchaseOrderResponse struct {
	ID                   string                      `json:"id"`
	SupplierID           string                      `json:"supplier_id"`
	OrderDate            time.Time                   `json:"order_date"`
	ExpectedDeliveryDate *time.Time                  `json:"expected_delivery_date,omitempty"`
	Status               string                      `json:"status"`
	TotalAmount          decimal.Decimal             `json:"total_amount"`
	Notes                string                      `json:"notes,omitempty"`
	CreatedBy            string                      `json:"created_by,omitempty"`
	Items                []PurchaseOrderItemResponse `json:"items,omitempty"`
}

// PurchaseOrderItemResponse línea de la orden en respuestas.
type PurchaseOrderItemResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Quantity         int64           `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ReceivedQuantity int64           `json:"received_quantity"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// ToPurchaseOrderResponse convierte la orden y sus líneas al DTO de respuesta.
func ToPurchaseOrderResponse(o *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) *PurchaseOrderResponse {
	resp := &PurchaseOrderResponse{
		ID:                   o.ID,
		SupplierID:           o.SupplierID,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Status:               o.Status,
		TotalAmount:          o.TotalAmount,
		Notes:                o.Notes,
		CreatedBy:            o.CreatedBy,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, PurchaseOrderItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ReceivedQuantity: it.ReceivedQuantity,
			LineTotal:        it.LineTotal,
		})
	}
	return resp
}
