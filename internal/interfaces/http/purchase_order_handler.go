package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/purchasing"
)

// PurchaseOrderHandler maneja las peticiones HTTP de órdenes de compra.
type PurchaseOrderHandler struct {
	uc      *purchasing.PurchaseOrderUseCase
	receive *purchasing.ReceiveUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *purchasing.PurchaseOrderUseCase, receive *purchasing.ReceiveUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, receive: receive}
}

// Create godoc
// @Summary      Crear orden de compra
// @Description  La orden nace en estado draft. total_amount y line_total se
//
//	calculan de las líneas; nunca se aceptan del cliente.
//
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "supplier_id, items (product_id, quantity, unit_price)"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener orden de compra con sus líneas
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (draft, submitted, received, cancelled)"
// @Param        limit   query  int     false  "Máximo de filas (default 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.PurchaseOrderResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(resp), "purchase_orders": resp})
}

// Submit godoc
// @Summary      Enviar orden (draft → submitted)
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/submit [post]
func (h *PurchaseOrderHandler) Submit(c *fiber.Ctx) error {
	if err := h.uc.Submit(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden enviada"})
}

// Reopen godoc
// @Summary      Reabrir orden (submitted → draft)
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/reopen [post]
func (h *PurchaseOrderHandler) Reopen(c *fiber.Ctx) error {
	if err := h.uc.Reopen(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden reabierta"})
}

// Cancel godoc
// @Summary      Cancelar orden (draft o submitted → cancelled)
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden cancelada"})
}

// ReceiveLineItem godoc
// @Summary      Recibir mercancía contra una línea
// @Description  Incrementa received_quantity, registra el movimiento Purchase en
//
//	el libro y, si todas las líneas quedan completas, transiciona la
//	orden a received. Todo en una sola transacción.
//
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID de la línea"
// @Param        body    body  dto.ReceiveLineItemRequest  true  "received_amount, location_id destino"
// @Success      200   {object}  dto.PurchaseOrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/items/{itemId}/receive [post]
func (h *PurchaseOrderHandler) ReceiveLineItem(c *fiber.Ctx) error {
	var in dto.ReceiveLineItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, record, err := h.receive.ReceiveLineItem(c.Context(), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"item": dto.PurchaseOrderItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			ReceivedQuantity: item.ReceivedQuantity,
			LineTotal:        item.LineTotal,
		},
		"ledger_record_id": record.ID,
	})
}
