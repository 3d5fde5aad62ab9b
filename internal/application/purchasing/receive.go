package purchasing

import (
	"context"
	"time"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	appinv "github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ReceiveUseCase registra la recepción de mercancía contra una línea de orden
// de compra. La actualización de la línea y el movimiento Purchase en el libro
// se confirman en la misma transacción.
type ReceiveUseCase struct {
	txRunner     TxRunner
	engine       *appinv.ApplyTransactionUseCase
	poRepo       repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	txTypeRepo   repository.TransactionTypeRepository
}

// NewReceiveUseCase construye el caso de uso de recepción.
func NewReceiveUseCase(
	txRunner TxRunner,
	engine *appinv.ApplyTransactionUseCase,
	poRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	txTypeRepo repository.TransactionTypeRepository,
) *ReceiveUseCase {
	return &ReceiveUseCase{
		txRunner:     txRunner,
		engine:       engine,
		poRepo:       poRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		txTypeRepo:   txTypeRepo,
	}
}

// ReceiveLineItem incrementa received_quantity de la línea, recalcula
// line_total, registra el movimiento Purchase por la cantidad recibida hacia la
// ubicación destino, y si todas las líneas quedan completas transiciona la
// orden a received. Precondición: 0 < amount <= (ordenado − recibido) y la
// orden en estado submitted. Si la precondición falla, no se confirma nada.
func (uc *ReceiveUseCase) ReceiveLineItem(ctx context.Context, itemID string, in dto.ReceiveLineItemRequest) (*entity.PurchaseOrderItem, *entity.LedgerRecord, error) {
	if in.ReceivedAmount <= 0 {
		return nil, nil, domain.ErrInvalidQuantity
	}

	// Validaciones de catálogo fuera de la transacción (la línea se relee con
	// bloqueo adentro; el catálogo es referencia estable).
	preItem, err := uc.poRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if preItem == nil {
		return nil, nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, preItem.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !product.IsActive {
		return nil, nil, domain.ErrInactiveEntity
	}
	location, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, nil, err
	}
	if location == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !location.IsActive {
		return nil, nil, domain.ErrInactiveEntity
	}
	purchaseType, err := uc.txTypeRepo.GetByName(ctx, entity.TxTypePurchase)
	if err != nil {
		return nil, nil, err
	}
	if purchaseType == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now()
	var (
		item   *entity.PurchaseOrderItem
		record *entity.LedgerRecord
	)

	err = uc.txRunner.RunPurchasing(ctx, func(
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
		poRepo repository.PurchaseOrderRepository,
	) error {
		// Relee la línea con bloqueo para serializar recepciones concurrentes.
		var txErr error
		item, txErr = poRepo.GetItemForUpdate(ctx, itemID)
		if txErr != nil {
			return txErr
		}
		if item == nil {
			return domain.ErrNotFound
		}
		order, txErr := poRepo.GetByID(ctx, item.PurchaseOrderID)
		if txErr != nil {
			return txErr
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.POStatusSubmitted {
			return domain.ErrConflict
		}
		if in.ReceivedAmount > item.Remaining() {
			return domain.ErrOverReceipt
		}

		item.ReceivedQuantity += in.ReceivedAmount
		item.LineTotal = item.ComputeLineTotal()
		item.UpdatedAt = now
		if txErr = poRepo.UpdateItem(ctx, item); txErr != nil {
			return txErr
		}

		record, txErr = uc.engine.ApplyInTx(ctx, stockRepo, ledgerRepo, purchaseType, appinv.ApplyTransactionInput{
			ProductID:       item.ProductID,
			LocationID:      in.LocationID,
			TransactionType: purchaseType.Name,
			Quantity:        in.ReceivedAmount,
			ReferenceNumber: order.ID,
			Notes:           "recepción orden de compra",
			CreatedBy:       in.CreatedBy,
		}, now)
		if txErr != nil {
			return txErr
		}

		// Si todas las líneas quedaron completas, la orden pasa a received.
		items, txErr := poRepo.ListItems(ctx, order.ID)
		if txErr != nil {
			return txErr
		}
		complete := true
		for _, it := range items {
			if it.Remaining() > 0 {
				complete = false
				break
			}
		}
		if complete {
			return poRepo.UpdateStatus(ctx, order.ID, entity.POStatusReceived)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return item, record, nil
}
