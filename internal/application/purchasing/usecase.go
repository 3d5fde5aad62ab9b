package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// PurchaseOrderUseCase maneja el ciclo de vida de las órdenes de compra:
// draft → submitted → received/cancelled, unidireccional salvo draft↔submitted.
type PurchaseOrderUseCase struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// Create crea una orden en estado draft. TotalAmount y line_total se calculan
// de las líneas (cantidad × precio unitario); nunca se aceptan del caller.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if !supplier.IsActive {
		return nil, domain.ErrInactiveEntity
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:                   uuid.New().String(),
		SupplierID:           in.SupplierID,
		OrderDate:            now,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Status:               entity.POStatusDraft,
		TotalAmount:          decimal.Zero,
		Notes:                in.Notes,
		CreatedBy:            in.CreatedBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	items := make([]*entity.PurchaseOrderItem, 0, len(in.Items))
	for _, li := range in.Items {
		if li.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if li.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, li.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if !product.IsActive {
			return nil, domain.ErrInactiveEntity
		}
		item := &entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: order.ID,
			ProductID:       li.ProductID,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		item.LineTotal = item.ComputeLineTotal()
		order.TotalAmount = order.TotalAmount.Add(item.LineTotal)
		items = append(items, item)
	}

	if err := uc.poRepo.Create(ctx, order, items); err != nil {
		return nil, err
	}
	return dto.ToPurchaseOrderResponse(order, items), nil
}

// Submit transiciona draft → submitted.
func (uc *PurchaseOrderUseCase) Submit(ctx context.Context, orderID string) error {
	return uc.transition(ctx, orderID, entity.POStatusDraft, entity.POStatusSubmitted)
}

// Reopen transiciona submitted → draft (única transición reversible).
func (uc *PurchaseOrderUseCase) Reopen(ctx context.Context, orderID string) error {
	return uc.transition(ctx, orderID, entity.POStatusSubmitted, entity.POStatusDraft)
}

// Cancel transiciona draft o submitted → cancelled. Una orden recibida o ya
// cancelada no admite cancelación.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, orderID string) error {
	order, err := uc.poRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.POStatusDraft && order.Status != entity.POStatusSubmitted {
		return domain.ErrConflict
	}
	return uc.poRepo.UpdateStatus(ctx, orderID, entity.POStatusCancelled)
}

func (uc *PurchaseOrderUseCase) transition(ctx context.Context, orderID, from, to string) error {
	order, err := uc.poRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != from {
		return domain.ErrConflict
	}
	return uc.poRepo.UpdateStatus(ctx, orderID, to)
}

// GetByID devuelve la orden con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.poRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.poRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return dto.ToPurchaseOrderResponse(order, items), nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, status string, limit, offset int) ([]*dto.PurchaseOrderResponse, error) {
	orders, err := uc.poRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToPurchaseOrderResponse(o, nil))
	}
	return resp, nil
}
