package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ApplyTransactionUseCase es el motor de transacciones de inventario: valida un
// movimiento y lo aplica de forma transaccional, con bloqueo de fila
// (SELECT FOR UPDATE) sobre el par producto+ubicación y Commit/Rollback.
type ApplyTransactionUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	txTypeRepo   repository.TransactionTypeRepository
}

// NewApplyTransactionUseCase construye el motor.
func NewApplyTransactionUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	txTypeRepo repository.TransactionTypeRepository,
) *ApplyTransactionUseCase {
	return &ApplyTransactionUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		txTypeRepo:   txTypeRepo,
	}
}

// ApplyTransactionInput entrada para aplicar un movimiento. Quantity es la
// magnitud positiva que se guarda en el libro; la dirección la da únicamente el
// efecto firmado del tipo (TransactionType por nombre: Purchase, Sale, ...).
type ApplyTransactionInput struct {
	ProductID       string
	LocationID      string
	TransactionType string
	Quantity        int64
	ReferenceNumber string
	Notes           string
	CreatedBy       string
}

// Apply valida las precondiciones, resuelve el efecto del tipo y ejecuta la
// unidad atómica: bloquea la fila de stock, verifica que la nueva cantidad no
// sea negativa, escribe el nuevo stock y agrega el registro al libro. Si la
// cantidad resultante fuera negativa falla con ErrInsufficientStock sin
// escribir nada (ni escritura parcial ni clamping).
func (uc *ApplyTransactionUseCase) Apply(ctx context.Context, input ApplyTransactionInput) (*entity.LedgerRecord, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsActive {
		return nil, domain.ErrInactiveEntity
	}

	location, err := uc.locationRepo.GetByID(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if !location.IsActive {
		return nil, domain.ErrInactiveEntity
	}

	txType, err := uc.txTypeRepo.GetByName(ctx, input.TransactionType)
	if err != nil {
		return nil, err
	}
	if txType == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var record *entity.LedgerRecord

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		var txErr error
		record, txErr = uc.ApplyInTx(ctx, stockRepo, ledgerRepo, txType, input, now)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ApplyInTx ejecuta el movimiento usando los repositorios proporcionados (misma
// transacción del caller). Lo usa Apply dentro de su propio TxRunner y el caso
// de uso de recepción de órdenes de compra, que necesita el movimiento Purchase
// en la misma transacción que la actualización de la línea.
// El caller es responsable de haber validado producto, ubicación y cantidad.
func (uc *ApplyTransactionUseCase) ApplyInTx(
	ctx context.Context,
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
	txType *entity.TransactionType,
	input ApplyTransactionInput,
	now time.Time,
) (*entity.LedgerRecord, error) {
	// Un efecto 0 (ej. Adjustment de conteo) deja el stock intacto: solo se
	// agrega el registro al libro, preservando la equivalencia por replay.
	if txType.AffectsInventory != 0 {
		// Bloquea la fila producto+ubicación (SELECT FOR UPDATE); si no existe,
		// GetForUpdate la materializa en cero antes de bloquear para que dos
		// primeros movimientos concurrentes no lean ambos cantidad 0.
		stock, err := stockRepo.GetForUpdate(ctx, input.ProductID, input.LocationID)
		if err != nil {
			return nil, err
		}
		delta := int64(txType.AffectsInventory) * input.Quantity
		newQuantity := stock.Quantity + delta
		if newQuantity < 0 {
			return nil, domain.ErrInsufficientStock
		}
		stock.Quantity = newQuantity
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return nil, err
		}
	}

	record := &entity.LedgerRecord{
		ID:                uuid.New().String(),
		ProductID:         input.ProductID,
		LocationID:        input.LocationID,
		TransactionTypeID: txType.ID,
		Quantity:          input.Quantity, // siempre la magnitud positiva original
		TransactionDate:   now,
		ReferenceNumber:   input.ReferenceNumber,
		Notes:             input.Notes,
		CreatedBy:         input.CreatedBy,
		CreatedAt:         now,
	}
	if err := ledgerRepo.Append(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
