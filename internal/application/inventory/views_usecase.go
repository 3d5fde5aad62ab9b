package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	domaininv "github.com/jhoicas/bodega-api/internal/domain/inventory"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ViewsUseCase calcula las vistas derivadas (inventario actual, lista de
// reorden, movimientos recientes, niveles de stock). Son funciones puras sobre
// el estado confirmado: sin caché ni estado propio, siempre consistentes con la
// última transacción del libro.
type ViewsUseCase struct {
	viewsRepo repository.ViewsRepository
}

// NewViewsUseCase construye el caso de uso de vistas.
func NewViewsUseCase(viewsRepo repository.ViewsRepository) *ViewsUseCase {
	return &ViewsUseCase{viewsRepo: viewsRepo}
}

// CurrentInventory devuelve el inventario actual con valor y clasificación de
// estado por fila. Excluye productos inactivos; filtros opcionales por producto
// y/o ubicación.
func (uc *ViewsUseCase) CurrentInventory(ctx context.Context, productID, locationID string) ([]dto.CurrentInventoryItemDTO, error) {
	rows, err := uc.viewsRepo.CurrentInventory(ctx, productID, locationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrentInventoryItemDTO, 0, len(rows))
	for _, r := range rows {
		qty := decimal.NewFromInt(r.Quantity)
		items = append(items, dto.CurrentInventoryItemDTO{
			ProductID:      r.ProductID,
			SKU:            r.SKU,
			ProductName:    r.ProductName,
			CategoryName:   r.CategoryName,
			SupplierName:   r.SupplierName,
			LocationName:   r.LocationName,
			Quantity:       r.Quantity,
			MinStockLevel:  r.MinStockLevel,
			MaxStockLevel:  r.MaxStockLevel,
			UnitPrice:      r.UnitPrice,
			InventoryValue: r.UnitPrice.Mul(qty),
			StockStatus:    domaininv.ClassifyStock(r.Quantity, r.MinStockLevel, r.MaxStockLevel),
			LastCountedAt:  r.LastCountedAt,
		})
	}
	return items, nil
}

// ReorderList devuelve los productos activos cuyo stock sumado entre todas las
// ubicaciones está estrictamente por debajo del mínimo, con la cantidad a pedir
// (siempre > 0 por construcción) y el costo estimado del pedido.
func (uc *ViewsUseCase) ReorderList(ctx context.Context) ([]dto.ReorderItemDTO, error) {
	rows, err := uc.viewsRepo.ReorderList(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReorderItemDTO, 0, len(rows))
	for _, r := range rows {
		toOrder := domaininv.QuantityToOrder(r.TotalQuantity, r.MinStockLevel)
		if toOrder <= 0 {
			// La consulta ya filtra déficit estricto; esto solo protege el invariante.
			continue
		}
		items = append(items, dto.ReorderItemDTO{
			ProductID:       r.ProductID,
			SKU:             r.SKU,
			ProductName:     r.ProductName,
			SupplierName:    r.SupplierName,
			TotalQuantity:   r.TotalQuantity,
			MinStockLevel:   r.MinStockLevel,
			QuantityToOrder: toOrder,
			EstimatedCost:   r.UnitPrice.Mul(decimal.NewFromInt(toOrder)),
		})
	}
	return items, nil
}

// RecentTransactions devuelve el historial de movimientos con nombres resueltos,
// ordenado por fecha descendente (empates por orden de inserción, más reciente
// primero). Filtros opcionales por producto, ubicación y rango de fechas.
func (uc *ViewsUseCase) RecentTransactions(ctx context.Context, q dto.TransactionHistoryQuery) ([]dto.TransactionHistoryItemDTO, error) {
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := uc.viewsRepo.RecentTransactions(ctx, repository.LedgerFilter{
		ProductID:  q.ProductID,
		LocationID: q.LocationID,
		From:       q.From,
		To:         q.To,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionHistoryItemDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TransactionHistoryItemDTO{
			LedgerID:        r.LedgerID,
			SKU:             r.SKU,
			ProductName:     r.ProductName,
			LocationName:    r.LocationName,
			TransactionType: r.TransactionType,
			Effect:          r.Effect,
			Quantity:        r.Quantity,
			TransactionDate: r.TransactionDate,
			ReferenceNumber: r.ReferenceNumber,
			Notes:           r.Notes,
			CreatedBy:       r.CreatedBy,
		})
	}
	return items, nil
}

// StockLevels devuelve los niveles actuales por producto+ubicación.
func (uc *ViewsUseCase) StockLevels(ctx context.Context, productID, locationID string) ([]dto.StockLevelDTO, error) {
	rows, err := uc.viewsRepo.StockLevels(ctx, productID, locationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockLevelDTO{
			ProductID:     r.ProductID,
			SKU:           r.SKU,
			ProductName:   r.ProductName,
			LocationID:    r.LocationID,
			LocationName:  r.LocationName,
			Quantity:      r.Quantity,
			LastCountedAt: r.LastCountedAt,
		})
	}
	return items, nil
}
