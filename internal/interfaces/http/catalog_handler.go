package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
)

// CatalogHandler maneja las peticiones HTTP del catálogo de soporte:
// categorías, proveedores, ubicaciones y tipos de movimiento.
type CatalogHandler struct {
	categoryUC *usecase.CategoryUseCase
	supplierUC *usecase.SupplierUseCase
	locationUC *usecase.LocationUseCase
	txTypeUC   *usecase.TransactionTypeUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(
	categoryUC *usecase.CategoryUseCase,
	supplierUC *usecase.SupplierUseCase,
	locationUC *usecase.LocationUseCase,
	txTypeUC *usecase.TransactionTypeUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		categoryUC: categoryUC,
		supplierUC: supplierUC,
		locationUC: locationUC,
		txTypeUC:   txTypeUC,
	}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cat, err := h.categoryUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCategoryResponse(cat))
}

// GetCategory godoc
// @Summary      Obtener categoría por ID
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	cat, err := h.categoryUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCategoryResponse(cat))
}

// UpdateCategory godoc
// @Summary      Actualizar categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cat, err := h.categoryUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCategoryResponse(cat))
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.categoryUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, cat := range list {
		out = append(out, dto.ToCategoryResponse(cat))
	}
	return c.JSON(fiber.Map{"total": len(out), "categories": out})
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "name, datos de contacto"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.supplierUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSupplierResponse(s))
}

// GetSupplier godoc
// @Summary      Obtener proveedor por ID
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *CatalogHandler) GetSupplier(c *fiber.Ctx) error {
	s, err := h.supplierUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSupplierResponse(s))
}

// UpdateSupplier godoc
// @Summary      Actualizar proveedor
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *CatalogHandler) UpdateSupplier(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.supplierUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSupplierResponse(s))
}

// ListSuppliers godoc
// @Summary      Listar proveedores activos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	list, err := h.supplierUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "suppliers": out})
}

// CreateLocation godoc
// @Summary      Crear ubicación
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "name, description"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.locationUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLocationResponse(l))
}

// GetLocation godoc
// @Summary      Obtener ubicación por ID
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *CatalogHandler) GetLocation(c *fiber.Ctx) error {
	l, err := h.locationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToLocationResponse(l))
}

// ListLocations godoc
// @Summary      Listar ubicaciones activas
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	list, err := h.locationUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.ToLocationResponse(l))
	}
	return c.JSON(fiber.Map{"total": len(out), "locations": out})
}

// ListTransactionTypes godoc
// @Summary      Listar tipos de movimiento
// @Description  Catálogo fijo: cada tipo lleva su efecto firmado sobre el stock
//
//	(+1 entrada, -1 salida, 0 neutro).
//
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.TransactionTypeResponse
// @Router       /api/transaction-types [get]
func (h *CatalogHandler) ListTransactionTypes(c *fiber.Ctx) error {
	list, err := h.txTypeUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.TransactionTypeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.ToTransactionTypeResponse(t))
	}
	return c.JSON(fiber.Map{"total": len(out), "transaction_types": out})
}
