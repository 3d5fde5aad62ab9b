package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// StockCountInput entrada para registrar un conteo físico. CountedQuantity es
// la cantidad absoluta contada en estantería (>= 0), no un delta.
type StockCountInput struct {
	ProductID       string
	LocationID      string
	CountedQuantity int64
	ReferenceNumber string
	Notes           string
	CreatedBy       string
}

// RecordCount registra un conteo físico: fija el stock del par en la cantidad
// contada, estampa last_counted_at y asienta la diferencia contra la cantidad
// bloqueada como movimiento Count In / Count Out, de modo que el libro siga
// reproduciendo el stock. Si el conteo coincide con el sistema solo se estampa
// la fecha, sin registro en el libro. Nunca sobreescribe el stock sin dejar el
// delta asentado.
func (uc *ApplyTransactionUseCase) RecordCount(ctx context.Context, input StockCountInput) (*entity.StockEntry, *entity.LedgerRecord, error) {
	if input.CountedQuantity < 0 {
		return nil, nil, domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !product.IsActive {
		return nil, nil, domain.ErrInactiveEntity
	}

	location, err := uc.locationRepo.GetByID(ctx, input.LocationID)
	if err != nil {
		return nil, nil, err
	}
	if location == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !location.IsActive {
		return nil, nil, domain.ErrInactiveEntity
	}

	countIn, err := uc.txTypeRepo.GetByName(ctx, entity.TxTypeCountIn)
	if err != nil {
		return nil, nil, err
	}
	countOut, err := uc.txTypeRepo.GetByName(ctx, entity.TxTypeCountOut)
	if err != nil {
		return nil, nil, err
	}
	if countIn == nil || countOut == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now()
	var (
		entry  *entity.StockEntry
		record *entity.LedgerRecord
	)

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		stock, txErr := stockRepo.GetForUpdate(ctx, input.ProductID, input.LocationID)
		if txErr != nil {
			return txErr
		}
		delta := input.CountedQuantity - stock.Quantity

		stock.Quantity = input.CountedQuantity
		stock.LastCountedAt = &now
		stock.UpdatedAt = now
		if txErr = stockRepo.Upsert(ctx, stock); txErr != nil {
			return txErr
		}
		entry = stock

		if delta == 0 {
			return nil
		}
		txType, magnitude := countIn, delta
		if delta < 0 {
			txType, magnitude = countOut, -delta
		}
		record = &entity.LedgerRecord{
			ID:                uuid.New().String(),
			ProductID:         input.ProductID,
			LocationID:        input.LocationID,
			TransactionTypeID: txType.ID,
			Quantity:          magnitude,
			TransactionDate:   now,
			ReferenceNumber:   input.ReferenceNumber,
			Notes:             input.Notes,
			CreatedBy:         input.CreatedBy,
			CreatedAt:         now,
		}
		return ledgerRepo.Append(ctx, record)
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, record, nil
}
