package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	ListItems(ctx context.Context, orderID string) ([]*entity.PurchaseOrderItem, error)
	GetItemByID(ctx context.Context, itemID string) (*entity.PurchaseOrderItem, error)
	// GetItemForUpdate bloquea la línea (SELECT FOR UPDATE) para serializar
	// recepciones concurrentes contra la misma línea.
	GetItemForUpdate(ctx context.Context, itemID string) (*entity.PurchaseOrderItem, error)
	UpdateItem(ctx context.Context, item *entity.PurchaseOrderItem) error
	UpdateStatus(ctx context.Context, orderID, status string) error
	UpdateTotal(ctx context.Context, orderID string, total decimal.Decimal) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
}
