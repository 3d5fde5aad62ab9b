package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	appinv "github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

type fakeViewsRepo struct {
	inventoryRows []repository.CurrentInventoryRow
	reorderRows   []repository.ReorderRow
	lastFilter    repository.LedgerFilter
}

func (f *fakeViewsRepo) CurrentInventory(_ context.Context, _, _ string) ([]repository.CurrentInventoryRow, error) {
	return f.inventoryRows, nil
}

func (f *fakeViewsRepo) ReorderList(_ context.Context) ([]repository.ReorderRow, error) {
	return f.reorderRows, nil
}

func (f *fakeViewsRepo) RecentTransactions(_ context.Context, filter repository.LedgerFilter) ([]repository.RecentTransactionRow, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeViewsRepo) StockLevels(_ context.Context, _, _ string) ([]repository.StockLevelRow, error) {
	return nil, nil
}

func maxPtr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests de vistas derivadas
// ──────────────────────────────────────────────────────────────────────────────

// El inventario actual calcula valor (precio × cantidad) y clasifica el estado.
func TestViews_CurrentInventoryValorYEstado(t *testing.T) {
	repo := &fakeViewsRepo{inventoryRows: []repository.CurrentInventoryRow{
		{ProductID: "p1", SKU: "A", Quantity: 5, MinStockLevel: 10, UnitPrice: decimal.NewFromInt(100)},
		{ProductID: "p2", SKU: "B", Quantity: 50, MinStockLevel: 10, UnitPrice: decimal.NewFromInt(20)},
		{ProductID: "p3", SKU: "C", Quantity: 200, MinStockLevel: 10, MaxStockLevel: maxPtr(150), UnitPrice: decimal.NewFromInt(1)},
	}}
	uc := appinv.NewViewsUseCase(repo)

	items, err := uc.CurrentInventory(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, items[0].InventoryValue.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Low Stock", items[0].StockStatus)
	assert.Equal(t, "Optimal", items[1].StockStatus)
	assert.Equal(t, "Overstocked", items[2].StockStatus)
}

// Sin máximo definido nunca hay Overstocked, por alta que sea la cantidad.
func TestViews_SinMaximoNoHayOverstock(t *testing.T) {
	repo := &fakeViewsRepo{inventoryRows: []repository.CurrentInventoryRow{
		{ProductID: "p1", SKU: "A", Quantity: 1_000_000, MinStockLevel: 10, UnitPrice: decimal.NewFromInt(1)},
	}}
	uc := appinv.NewViewsUseCase(repo)

	items, err := uc.CurrentInventory(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Optimal", items[0].StockStatus)
}

// La lista de reorden calcula cantidad a pedir (min − total) y costo estimado.
func TestViews_ReorderListCantidadYCosto(t *testing.T) {
	repo := &fakeViewsRepo{reorderRows: []repository.ReorderRow{
		{ProductID: "p1", SKU: "A", TotalQuantity: 3, MinStockLevel: 20, UnitPrice: decimal.NewFromInt(50)},
	}}
	uc := appinv.NewViewsUseCase(repo)

	items, err := uc.ReorderList(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, int64(17), items[0].QuantityToOrder)
	assert.True(t, items[0].EstimatedCost.Equal(decimal.NewFromInt(850)), "17 × 50")
}

// El límite del historial usa 100 por defecto y tope de 500.
func TestViews_RecentTransactionsLimite(t *testing.T) {
	repo := &fakeViewsRepo{}
	uc := appinv.NewViewsUseCase(repo)

	_, err := uc.RecentTransactions(context.Background(), dto.TransactionHistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit, "default")

	_, err = uc.RecentTransactions(context.Background(), dto.TransactionHistoryQuery{Limit: 9000})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit, "fuera de rango vuelve al default")

	_, err = uc.RecentTransactions(context.Background(), dto.TransactionHistoryQuery{Limit: 250})
	require.NoError(t, err)
	assert.Equal(t, 250, repo.lastFilter.Limit)
}
