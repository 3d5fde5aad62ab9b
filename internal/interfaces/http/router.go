package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/application/purchasing"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	LocationUC    *usecase.LocationUseCase
	TxTypeUC      *usecase.TransactionTypeUseCase
	ApplyTx       *inventory.ApplyTransactionUseCase
	Views         *inventory.ViewsUseCase
	PurchaseOrder *purchasing.PurchaseOrderUseCase
	Receive       *purchasing.ReceiveUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Catálogo de soporte
	catalogHandler := NewCatalogHandler(deps.CategoryUC, deps.SupplierUC, deps.LocationUC, deps.TxTypeUC)

	categories := api.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)

	suppliers := api.Group("/suppliers")
	suppliers.Post("/", catalogHandler.CreateSupplier)
	suppliers.Get("/", catalogHandler.ListSuppliers)
	suppliers.Get("/:id", catalogHandler.GetSupplier)
	suppliers.Put("/:id", catalogHandler.UpdateSupplier)

	locations := api.Group("/locations")
	locations.Post("/", catalogHandler.CreateLocation)
	locations.Get("/", catalogHandler.ListLocations)
	locations.Get("/:id", catalogHandler.GetLocation)

	api.Get("/transaction-types", catalogHandler.ListTransactionTypes)

	// Motor de transacciones y vistas derivadas
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ApplyTx, deps.Views)
	invGroup.Post("/transactions", inventoryHandler.ApplyTransaction)
	invGroup.Post("/counts", inventoryHandler.RecordCount)
	invGroup.Get("/transactions", inventoryHandler.RecentTransactions)
	invGroup.Get("/current", inventoryHandler.CurrentInventory)
	invGroup.Get("/reorder-list", inventoryHandler.ReorderList)
	invGroup.Get("/stock-levels", inventoryHandler.StockLevels)

	// Órdenes de compra
	pos := api.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrder, deps.Receive)
	pos.Post("/", poHandler.Create)
	pos.Get("/", poHandler.List)
	pos.Get("/:id", poHandler.GetByID)
	pos.Post("/:id/submit", poHandler.Submit)
	pos.Post("/:id/reopen", poHandler.Reopen)
	pos.Post("/:id/cancel", poHandler.Cancel)
	pos.Post("/items/:itemId/receive", poHandler.ReceiveLineItem)
}
