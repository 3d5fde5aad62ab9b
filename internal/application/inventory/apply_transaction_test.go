package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.StockEntry // key: productID|locationID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{entries: make(map[string]*entity.StockEntry)}
}

func stockKey(productID, locationID string) string { return productID + "|" + locationID }

func (f *fakeStockRepo) Get(_ context.Context, productID, locationID string) (*entity.StockEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[stockKey(productID, locationID)]; ok {
		cp := *e
		return &cp, nil
	}
	return &entity.StockEntry{ProductID: productID, LocationID: locationID}, nil
}

func (f *fakeStockRepo) GetForUpdate(_ context.Context, productID, locationID string) (*entity.StockEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[stockKey(productID, locationID)]; ok {
		cp := *e
		return &cp, nil
	}
	// Igual que el repo real: la fila se materializa en cero antes de devolverse
	// bloqueada, para que el primer movimiento hacia el par no sea invisible
	// para un segundo movimiento concurrente.
	e := &entity.StockEntry{ID: uuid.New().String(), ProductID: productID, LocationID: locationID}
	f.entries[stockKey(productID, locationID)] = e
	cp := *e
	return &cp, nil
}

func (f *fakeStockRepo) Upsert(_ context.Context, stock *entity.StockEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	cp := *stock
	f.entries[stockKey(stock.ProductID, stock.LocationID)] = &cp
	return nil
}

func (f *fakeStockRepo) SumByProduct(_ context.Context, productID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, e := range f.entries {
		if e.ProductID == productID {
			total += e.Quantity
		}
	}
	return total, nil
}

func (f *fakeStockRepo) quantity(productID, locationID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[stockKey(productID, locationID)]; ok {
		return e.Quantity
	}
	return 0
}

type fakeLedgerRepo struct {
	mu      sync.Mutex
	records []*entity.LedgerRecord
}

func (f *fakeLedgerRepo) Append(_ context.Context, record *entity.LedgerRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *record
	f.records = append(f.records, &cp)
	return nil
}

func (f *fakeLedgerRepo) GetByID(_ context.Context, id string) (*entity.LedgerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLedgerRepo) List(_ context.Context, _ repository.LedgerFilter) ([]*entity.LedgerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.LedgerRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeLedgerRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

// fakeTxRunner serializa las transacciones con un mutex, igual que lo haría el
// bloqueo de fila en PostgreSQL para el mismo par producto+ubicación.
type fakeTxRunner struct {
	mu     sync.Mutex
	stock  *fakeStockRepo
	ledger *fakeLedgerRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.stock, r.ledger)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Deactivate(_ context.Context, id string) error {
	if p, ok := f.products[id]; ok {
		p.IsActive = false
	}
	return nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(_ context.Context, _ *entity.Location) error { return nil }
func (f *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) List(_ context.Context) ([]*entity.Location, error) { return nil, nil }

type fakeTxTypeRepo struct {
	types map[string]*entity.TransactionType // key: name
}

func (f *fakeTxTypeRepo) GetByID(_ context.Context, id string) (*entity.TransactionType, error) {
	for _, t := range f.types {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (f *fakeTxTypeRepo) GetByName(_ context.Context, name string) (*entity.TransactionType, error) {
	return f.types[name], nil
}
func (f *fakeTxTypeRepo) List(_ context.Context) ([]*entity.TransactionType, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID      = "11111111-1111-1111-1111-111111111111"
	testLocationID     = "22222222-2222-2222-2222-222222222222"
	inactiveProductID  = "33333333-3333-3333-3333-333333333333"
	inactiveLocationID = "44444444-4444-4444-4444-444444444444"
)

type engineFixture struct {
	engine *appinv.ApplyTransactionUseCase
	stock  *fakeStockRepo
	ledger *fakeLedgerRepo
	types  *fakeTxTypeRepo
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	stock := newFakeStockRepo()
	ledger := &fakeLedgerRepo{}
	runner := &fakeTxRunner{stock: stock, ledger: ledger}

	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID:     {ID: testProductID, SKU: "SKU-001", Name: "Café molido", IsActive: true},
		inactiveProductID: {ID: inactiveProductID, SKU: "SKU-BAJA", Name: "Descontinuado", IsActive: false},
	}}
	locations := &fakeLocationRepo{locations: map[string]*entity.Location{
		testLocationID:     {ID: testLocationID, Name: "Bodega Principal", IsActive: true},
		inactiveLocationID: {ID: inactiveLocationID, Name: "Bodega Cerrada", IsActive: false},
	}}
	types := &fakeTxTypeRepo{types: map[string]*entity.TransactionType{
		entity.TxTypePurchase:   {ID: uuid.New().String(), Name: entity.TxTypePurchase, AffectsInventory: 1},
		entity.TxTypeSale:       {ID: uuid.New().String(), Name: entity.TxTypeSale, AffectsInventory: -1},
		entity.TxTypeAdjustment: {ID: uuid.New().String(), Name: entity.TxTypeAdjustment, AffectsInventory: 0},
		entity.TxTypeWriteOff:   {ID: uuid.New().String(), Name: entity.TxTypeWriteOff, AffectsInventory: -1},
		entity.TxTypeCountIn:    {ID: uuid.New().String(), Name: entity.TxTypeCountIn, AffectsInventory: 1},
		entity.TxTypeCountOut:   {ID: uuid.New().String(), Name: entity.TxTypeCountOut, AffectsInventory: -1},
	}}

	return &engineFixture{
		engine: appinv.NewApplyTransactionUseCase(runner, products, locations, types),
		stock:  stock,
		ledger: ledger,
		types:  types,
	}
}

func (fx *engineFixture) apply(t *testing.T, txType string, qty int64) (*entity.LedgerRecord, error) {
	t.Helper()
	return fx.engine.Apply(context.Background(), appinv.ApplyTransactionInput{
		ProductID:       testProductID,
		LocationID:      testLocationID,
		TransactionType: txType,
		Quantity:        qty,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de transacciones
// ──────────────────────────────────────────────────────────────────────────────

// Una compra sobre un par producto+ubicación sin entrada previa crea la entrada
// con la cantidad del movimiento y agrega el registro al libro.
func TestApply_CompraCreaEntradaDeStock(t *testing.T) {
	fx := newEngineFixture(t)

	record, err := fx.apply(t, entity.TxTypePurchase, 50)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, int64(50), fx.stock.quantity(testProductID, testLocationID))
	assert.Equal(t, int64(50), record.Quantity, "el libro guarda la magnitud positiva")
	assert.Equal(t, 1, fx.ledger.count())
}

// Una venta que dejaría el stock negativo se rechaza con ErrInsufficientStock
// y no escribe nada: ni stock ni registro en el libro.
func TestApply_VentaSinStockRechazada(t *testing.T) {
	fx := newEngineFixture(t)

	_, err := fx.apply(t, entity.TxTypePurchase, 10)
	require.NoError(t, err)

	_, err = fx.apply(t, entity.TxTypeSale, 11)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), fx.stock.quantity(testProductID, testLocationID), "el stock no cambia")
	assert.Equal(t, 1, fx.ledger.count(), "no se agrega registro al libro")
}

// Vender exactamente el stock disponible deja la cantidad en cero: cero es válido.
func TestApply_VentaHastaCero(t *testing.T) {
	fx := newEngineFixture(t)

	_, err := fx.apply(t, entity.TxTypePurchase, 10)
	require.NoError(t, err)
	_, err = fx.apply(t, entity.TxTypeSale, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(0), fx.stock.quantity(testProductID, testLocationID))
	assert.Equal(t, 2, fx.ledger.count())
}

// Cantidad cero o negativa se rechaza antes de tocar nada.
func TestApply_CantidadInvalida(t *testing.T) {
	fx := newEngineFixture(t)

	for _, qty := range []int64{0, -5} {
		_, err := fx.apply(t, entity.TxTypePurchase, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Equal(t, 0, fx.ledger.count())
}

// Producto inexistente, producto inactivo y ubicación inactiva.
func TestApply_ReferenciasInvalidas(t *testing.T) {
	fx := newEngineFixture(t)

	_, err := fx.engine.Apply(context.Background(), appinv.ApplyTransactionInput{
		ProductID:       "no-existe",
		LocationID:      testLocationID,
		TransactionType: entity.TxTypePurchase,
		Quantity:        1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = fx.apply(t, "Tipo Desconocido", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound, "tipo de transacción inexistente")

	_, err = fx.engine.Apply(context.Background(), appinv.ApplyTransactionInput{
		ProductID:       inactiveProductID,
		LocationID:      testLocationID,
		TransactionType: entity.TxTypePurchase,
		Quantity:        1,
	})
	assert.ErrorIs(t, err, domain.ErrInactiveEntity, "producto inactivo")

	_, err = fx.engine.Apply(context.Background(), appinv.ApplyTransactionInput{
		ProductID:       testProductID,
		LocationID:      inactiveLocationID,
		TransactionType: entity.TxTypePurchase,
		Quantity:        1,
	})
	assert.ErrorIs(t, err, domain.ErrInactiveEntity, "ubicación inactiva")
}

// Un ajuste (efecto 0) agrega el registro al libro pero deja el stock intacto.
func TestApply_AjusteNoAlteraStock(t *testing.T) {
	fx := newEngineFixture(t)

	_, err := fx.apply(t, entity.TxTypePurchase, 20)
	require.NoError(t, err)

	record, err := fx.apply(t, entity.TxTypeAdjustment, 7)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, int64(20), fx.stock.quantity(testProductID, testLocationID))
	assert.Equal(t, 2, fx.ledger.count(), "el ajuste sí queda en el libro")
}

// Equivalencia por replay: la cantidad en stock debe ser igual a la suma de
// efecto × magnitud de todos los registros del libro para el par.
func TestApply_EquivalenciaPorReplay(t *testing.T) {
	fx := newEngineFixture(t)

	movimientos := []struct {
		tipo string
		qty  int64
	}{
		{entity.TxTypePurchase, 100},
		{entity.TxTypeSale, 30},
		{entity.TxTypeAdjustment, 5},
		{entity.TxTypeWriteOff, 10},
		{entity.TxTypePurchase, 15},
	}
	for _, m := range movimientos {
		_, err := fx.apply(t, m.tipo, m.qty)
		require.NoError(t, err)
	}

	// Replay: reconstruir la cantidad desde el libro.
	records, err := fx.ledger.List(context.Background(), repository.LedgerFilter{})
	require.NoError(t, err)

	effectByID := make(map[string]int)
	for _, tt := range fx.types.types {
		effectByID[tt.ID] = tt.AffectsInventory
	}
	var replayed int64
	for _, r := range records {
		replayed += int64(effectByID[r.TransactionTypeID]) * r.Quantity
	}

	assert.Equal(t, replayed, fx.stock.quantity(testProductID, testLocationID),
		"el stock debe ser reconstruible reproduciendo el libro")
	assert.Equal(t, int64(75), replayed)
}

// Transacciones concurrentes sobre el mismo par no pierden actualizaciones:
// el runner serializa igual que el bloqueo de fila en la BD.
func TestApply_ConcurrenciaSinPerdidas(t *testing.T) {
	fx := newEngineFixture(t)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := fx.apply(t, entity.TxTypePurchase, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), fx.stock.quantity(testProductID, testLocationID))
	assert.Equal(t, n, fx.ledger.count())
}

// Dos primeros movimientos concurrentes hacia un par sin entrada previa no se
// pisan: la fila de stock se materializa y bloquea antes de leer la cantidad,
// así que ambos deltas quedan aplicados y el libro reproduce el total.
func TestApply_PrimerMovimientoConcurrenteSinPerdidas(t *testing.T) {
	fx := newEngineFixture(t)

	cantidades := []int64{50, 30}
	var wg sync.WaitGroup
	for _, qty := range cantidades {
		wg.Add(1)
		go func(q int64) {
			defer wg.Done()
			_, err := fx.apply(t, entity.TxTypePurchase, q)
			assert.NoError(t, err)
		}(qty)
	}
	wg.Wait()

	assert.Equal(t, int64(80), fx.stock.quantity(testProductID, testLocationID))

	records, err := fx.ledger.List(context.Background(), repository.LedgerFilter{})
	require.NoError(t, err)
	var replayed int64
	for _, r := range records {
		replayed += r.Quantity // ambos movimientos son compras (efecto +1)
	}
	assert.Equal(t, int64(80), replayed, "el replay del libro coincide con el stock")
}

// La fecha del movimiento y la de creación del registro son consistentes.
func TestApply_FechasDelRegistro(t *testing.T) {
	fx := newEngineFixture(t)

	before := time.Now().Add(-time.Second)
	record, err := fx.apply(t, entity.TxTypePurchase, 1)
	require.NoError(t, err)

	assert.True(t, record.TransactionDate.After(before))
	assert.Equal(t, record.TransactionDate, record.CreatedAt)
}
