package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del motor de transacciones y las
// vistas derivadas.
type InventoryHandler struct {
	engine *inventory.ApplyTransactionUseCase
	views  *inventory.ViewsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *inventory.ApplyTransactionUseCase, views *inventory.ViewsUseCase) *InventoryHandler {
	return &InventoryHandler{engine: engine, views: views}
}

// ApplyTransaction godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica un movimiento (Purchase, Sale, Adjustment, ...) de forma
//
//	atómica: actualiza el stock y agrega el registro al libro, o rechaza
//	sin escribir nada si el stock quedaría negativo.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyTransactionRequest  true  "product_id, location_id, transaction_type, quantity (magnitud positiva)"
// @Success      201   {object}  dto.LedgerRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [post]
func (h *InventoryHandler) ApplyTransaction(c *fiber.Ctx) error {
	var in dto.ApplyTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	record, err := h.engine.Apply(c.Context(), inventory.ApplyTransactionInput{
		ProductID:       in.ProductID,
		LocationID:      in.LocationID,
		TransactionType: in.TransactionType,
		Quantity:        in.Quantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LedgerRecordResponse{
		ID:                record.ID,
		ProductID:         record.ProductID,
		LocationID:        record.LocationID,
		TransactionTypeID: record.TransactionTypeID,
		Quantity:          record.Quantity,
		TransactionDate:   record.TransactionDate,
		ReferenceNumber:   record.ReferenceNumber,
		Notes:             record.Notes,
		CreatedBy:         record.CreatedBy,
	})
}

// RecordCount godoc
// @Summary      Registrar conteo físico
// @Description  Fija el stock del par producto+ubicación en la cantidad contada
//
//	y asienta la diferencia en el libro (Count In / Count Out). Si el
//	conteo coincide con el sistema solo se estampa last_counted_at.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockCountRequest  true  "product_id, location_id, counted_quantity (absoluta)"
// @Success      200   {object}  dto.StockCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/counts [post]
func (h *InventoryHandler) RecordCount(c *fiber.Ctx) error {
	var in dto.StockCountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, record, err := h.engine.RecordCount(c.Context(), inventory.StockCountInput{
		ProductID:       in.ProductID,
		LocationID:      in.LocationID,
		CountedQuantity: in.CountedQuantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := dto.StockCountResponse{
		ProductID:     entry.ProductID,
		LocationID:    entry.LocationID,
		Quantity:      entry.Quantity,
		LastCountedAt: entry.LastCountedAt,
	}
	if record != nil {
		out.LedgerRecordID = record.ID
	}
	return c.JSON(out)
}

// CurrentInventory godoc
// @Summary      Inventario actual
// @Description  Stock por producto+ubicación con valor de inventario y estado
//
//	(Low Stock / Optimal / Overstocked). Excluye productos inactivos.
//
// @Tags         inventory
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto (UUID)"
// @Param        location_id  query  string  false  "Filtrar por ubicación (UUID)"
// @Success      200  {array}   dto.CurrentInventoryItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/current [get]
func (h *InventoryHandler) CurrentInventory(c *fiber.Ctx) error {
	items, err := h.views.CurrentInventory(c.Context(), c.Query("product_id"), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// ReorderList godoc
// @Summary      Lista de reorden
// @Description  Productos activos cuyo stock total quedó por debajo del mínimo,
//
//	con cantidad sugerida y costo estimado, ordenados por déficit.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.ReorderItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/reorder-list [get]
func (h *InventoryHandler) ReorderList(c *fiber.Ctx) error {
	items, err := h.views.ReorderList(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// RecentTransactions godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto (UUID)"
// @Param        location_id  query  string  false  "Filtrar por ubicación (UUID)"
// @Param        from         query  string  false  "Fecha inicial (RFC3339)"
// @Param        to           query  string  false  "Fecha final (RFC3339)"
// @Param        limit        query  int     false  "Máximo de filas (default 100, tope 500)"
// @Success      200  {array}   dto.TransactionHistoryItemDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) RecentTransactions(c *fiber.Ctx) error {
	var q dto.TransactionHistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	items, err := h.views.RecentTransactions(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// StockLevels godoc
// @Summary      Niveles de stock por producto+ubicación
// @Tags         inventory
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto (UUID)"
// @Param        location_id  query  string  false  "Filtrar por ubicación (UUID)"
// @Success      200  {array}   dto.StockLevelDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-levels [get]
func (h *InventoryHandler) StockLevels(c *fiber.Ctx) error {
	items, err := h.views.StockLevels(c.Context(), c.Query("product_id"), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}
