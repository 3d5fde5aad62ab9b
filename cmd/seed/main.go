package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	appinv "github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bodega-api/pkg/config"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// Carga un catálogo de demostración con movimientos iniciales. Idempotencia
// parcial: los productos con SKU repetido se omiten, el resto se inserta.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	txTypeRepo := postgres.NewTransactionTypeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	applyTxUC := appinv.NewApplyTransactionUseCase(txRunner, productRepo, locationRepo, txTypeRepo)

	electronica, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{
		Name: "Electrónica", Description: "Equipos y accesorios electrónicos",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear categoría")
	}
	papeleria, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{
		Name: "Papelería", Description: "Suministros de oficina",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear categoría")
	}

	proveedor, err := supplierUC.Create(ctx, dto.CreateSupplierRequest{
		Name:          "Distribuciones El Dorado",
		ContactPerson: "María Gómez",
		Email:         "ventas@eldorado.co",
		Phone:         "+57 301 555 0101",
		Address:       "Calle 80 #12-34, Bogotá",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear proveedor")
	}

	bodega, err := locationUC.Create(ctx, dto.CreateLocationRequest{
		Name: "Bodega Principal", Description: "Bodega central de despacho",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear ubicación")
	}
	mostrador, err := locationUC.Create(ctx, dto.CreateLocationRequest{
		Name: "Punto de Venta", Description: "Inventario en mostrador",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear ubicación")
	}

	maxTeclados := int64(120)
	seedProducts := []dto.CreateProductRequest{
		{
			SKU: "ELEC-001", Name: "Teclado inalámbrico", Description: "Teclado bluetooth en español",
			CategoryID: electronica.ID, SupplierID: proveedor.ID,
			UnitPrice: decimal.NewFromFloat(89900), MinStockLevel: 15, MaxStockLevel: &maxTeclados,
		},
		{
			SKU: "ELEC-002", Name: "Monitor 24 pulgadas", Description: "Monitor IPS full HD",
			CategoryID: electronica.ID, SupplierID: proveedor.ID,
			UnitPrice: decimal.NewFromFloat(649900), MinStockLevel: 5,
		},
		{
			SKU: "PAP-001", Name: "Resma papel carta", Description: "Resma 500 hojas 75g",
			CategoryID: papeleria.ID, SupplierID: proveedor.ID,
			UnitPrice: decimal.NewFromFloat(18500), MinStockLevel: 40,
		},
	}

	type seeded struct {
		productID string
		initial   int64
	}
	var products []seeded
	initials := []int64{60, 12, 100}
	for i, in := range seedProducts {
		p, err := productUC.Create(ctx, in)
		if err != nil {
			log.Warn().Err(err).Str("sku", in.SKU).Msg("producto omitido")
			continue
		}
		products = append(products, seeded{productID: p.ID, initial: initials[i]})
	}

	// Compra inicial hacia la bodega y una venta de muestra desde mostrador.
	for _, p := range products {
		if _, err := applyTxUC.Apply(ctx, appinv.ApplyTransactionInput{
			ProductID:       p.productID,
			LocationID:      bodega.ID,
			TransactionType: entity.TxTypePurchase,
			Quantity:        p.initial,
			ReferenceNumber: "SEED-001",
			Notes:           "carga inicial de demostración",
			CreatedBy:       "seed",
		}); err != nil {
			log.Fatal().Err(err).Msg("movimiento de carga inicial")
		}
	}

	if len(products) > 0 {
		first := products[0]
		if _, err := applyTxUC.Apply(ctx, appinv.ApplyTransactionInput{
			ProductID:       first.productID,
			LocationID:      bodega.ID,
			TransactionType: entity.TxTypeTransferOut,
			Quantity:        10,
			ReferenceNumber: "SEED-002",
			Notes:           "traslado a mostrador",
			CreatedBy:       "seed",
		}); err != nil {
			log.Fatal().Err(err).Msg("traslado de salida")
		}
		if _, err := applyTxUC.Apply(ctx, appinv.ApplyTransactionInput{
			ProductID:       first.productID,
			LocationID:      mostrador.ID,
			TransactionType: entity.TxTypeTransferIn,
			Quantity:        10,
			ReferenceNumber: "SEED-002",
			Notes:           "traslado desde bodega",
			CreatedBy:       "seed",
		}); err != nil {
			log.Fatal().Err(err).Msg("traslado de entrada")
		}
		if _, err := applyTxUC.Apply(ctx, appinv.ApplyTransactionInput{
			ProductID:       first.productID,
			LocationID:      mostrador.ID,
			TransactionType: entity.TxTypeSale,
			Quantity:        3,
			ReferenceNumber: "SEED-003",
			Notes:           "venta de muestra",
			CreatedBy:       "seed",
		}); err != nil {
			log.Fatal().Err(err).Msg("venta de muestra")
		}
	}

	log.Info().Int("products", len(products)).Msg("datos de demostración cargados")
}
