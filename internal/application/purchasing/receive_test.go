package purchasing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	appinv "github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/application/purchasing"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.StockEntry
}

func (f *fakeStockRepo) key(p, l string) string { return p + "|" + l }

func (f *fakeStockRepo) Get(ctx context.Context, productID, locationID string) (*entity.StockEntry, error) {
	return f.GetForUpdate(ctx, productID, locationID)
}

func (f *fakeStockRepo) GetForUpdate(_ context.Context, productID, locationID string) (*entity.StockEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[f.key(productID, locationID)]; ok {
		cp := *e
		return &cp, nil
	}
	return &entity.StockEntry{ProductID: productID, LocationID: locationID}, nil
}

func (f *fakeStockRepo) Upsert(_ context.Context, stock *entity.StockEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	cp := *stock
	f.entries[f.key(stock.ProductID, stock.LocationID)] = &cp
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
	if e, ok := f.entries[f.key(productID, locationID)]; ok {
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

func (f *fakeLedgerRepo) GetByID(_ context.Context, _ string) (*entity.LedgerRecord, error) {
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

type fakePORepo struct {
	mu     sync.Mutex
	orders map[string]*entity.PurchaseOrder
	items  map[string]*entity.PurchaseOrderItem
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{
		orders: make(map[string]*entity.PurchaseOrder),
		items:  make(map[string]*entity.PurchaseOrderItem),
	}
}

func (f *fakePORepo) Create(_ context.Context, order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *order
	f.orders[order.ID] = &cp
	for _, it := range items {
		ci := *it
		f.items[it.ID] = &ci
	}
	return nil
}

func (f *fakePORepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePORepo) ListItems(_ context.Context, orderID string) ([]*entity.PurchaseOrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PurchaseOrderItem
	for _, it := range f.items {
		if it.PurchaseOrderID == orderID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePORepo) GetItemByID(_ context.Context, itemID string) (*entity.PurchaseOrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if it, ok := f.items[itemID]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePORepo) GetItemForUpdate(ctx context.Context, itemID string) (*entity.PurchaseOrderItem, error) {
	return f.GetItemByID(ctx, itemID)
}

func (f *fakePORepo) UpdateItem(_ context.Context, item *entity.PurchaseOrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakePORepo) UpdateStatus(_ context.Context, orderID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[orderID]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakePORepo) UpdateTotal(_ context.Context, orderID string, total decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[orderID]; ok {
		o.TotalAmount = total
	}
	return nil
}

func (f *fakePORepo) List(_ context.Context, status string, _, _ int) ([]*entity.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PurchaseOrder
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePORepo) status(orderID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders[orderID].Status
}

func (f *fakePORepo) received(itemID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[itemID].ReceivedQuantity
}

// fakeRunner implementa los runners de inventario y compras sobre los mismos fakes.
type fakeRunner struct {
	mu     sync.Mutex
	stock  *fakeStockRepo
	ledger *fakeLedgerRepo
	po     *fakePORepo
}

func (r *fakeRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.stock, r.ledger)
}

func (r *fakeRunner) RunPurchasing(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
	poRepo repository.PurchaseOrderRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.stock, r.ledger, r.po)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Deactivate(_ context.Context, _ string) error { return nil }

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(_ context.Context, _ *entity.Location) error { return nil }
func (f *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) List(_ context.Context) ([]*entity.Location, error) { return nil, nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(_ context.Context, _ *entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) Update(_ context.Context, _ *entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) { return nil, nil }

type fakeTxTypeRepo struct {
	types map[string]*entity.TransactionType
}

func (f *fakeTxTypeRepo) GetByID(_ context.Context, _ string) (*entity.TransactionType, error) {
	return nil, nil
}
func (f *fakeTxTypeRepo) GetByName(_ context.Context, name string) (*entity.TransactionType, error) {
	return f.types[name], nil
}
func (f *fakeTxTypeRepo) List(_ context.Context) ([]*entity.TransactionType, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	poProductID  = "11111111-1111-1111-1111-111111111111"
	poLocationID = "22222222-2222-2222-2222-222222222222"
	poSupplierID = "55555555-5555-5555-5555-555555555555"
)

type receiveFixture struct {
	receive *purchasing.ReceiveUseCase
	poRepo  *fakePORepo
	stock   *fakeStockRepo
	ledger  *fakeLedgerRepo
	orderID string
	itemID  string
}

// newReceiveFixture arma una orden con una línea de 10 unidades en el estado indicado.
func newReceiveFixture(t *testing.T, orderStatus string) *receiveFixture {
	t.Helper()
	stock := &fakeStockRepo{entries: make(map[string]*entity.StockEntry)}
	ledger := &fakeLedgerRepo{}
	poRepo := newFakePORepo()
	runner := &fakeRunner{stock: stock, ledger: ledger, po: poRepo}

	products := &fakeProductRepo{products: map[string]*entity.Product{
		poProductID: {ID: poProductID, SKU: "SKU-001", Name: "Monitor", IsActive: true},
	}}
	locations := &fakeLocationRepo{locations: map[string]*entity.Location{
		poLocationID: {ID: poLocationID, Name: "Bodega Principal", IsActive: true},
	}}
	txTypes := &fakeTxTypeRepo{types: map[string]*entity.TransactionType{
		entity.TxTypePurchase: {ID: uuid.New().String(), Name: entity.TxTypePurchase, AffectsInventory: 1},
	}}

	engine := appinv.NewApplyTransactionUseCase(runner, products, locations, txTypes)
	receive := purchasing.NewReceiveUseCase(runner, engine, poRepo, products, locations, txTypes)

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SupplierID: poSupplierID,
		OrderDate:  now,
		Status:     orderStatus,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	item := &entity.PurchaseOrderItem{
		ID:              uuid.New().String(),
		PurchaseOrderID: order.ID,
		ProductID:       poProductID,
		Quantity:        10,
		UnitPrice:       decimal.NewFromInt(1000),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	item.LineTotal = item.ComputeLineTotal()
	order.TotalAmount = item.LineTotal
	require.NoError(t, poRepo.Create(context.Background(), order, []*entity.PurchaseOrderItem{item}))

	return &receiveFixture{
		receive: receive,
		poRepo:  poRepo,
		stock:   stock,
		ledger:  ledger,
		orderID: order.ID,
		itemID:  item.ID,
	}
}

func (fx *receiveFixture) receiveAmount(t *testing.T, amount int64) error {
	t.Helper()
	_, _, err := fx.receive.ReceiveLineItem(context.Background(), fx.itemID, receiveRequest(amount))
	return err
}

func receiveRequest(amount int64) dto.ReceiveLineItemRequest {
	return dto.ReceiveLineItemRequest{ReceivedAmount: amount, LocationID: poLocationID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de recepción
// ──────────────────────────────────────────────────────────────────────────────

// Recepción parcial: incrementa lo recibido, suma al stock, registra el
// movimiento Purchase y la orden sigue en submitted.
func TestReceive_RecepcionParcial(t *testing.T) {
	fx := newReceiveFixture(t, entity.POStatusSubmitted)

	require.NoError(t, fx.receiveAmount(t, 4))

	assert.Equal(t, int64(4), fx.poRepo.received(fx.itemID))
	assert.Equal(t, int64(4), fx.stock.quantity(poProductID, poLocationID))
	assert.Equal(t, 1, fx.ledger.count())
	assert.Equal(t, entity.POStatusSubmitted, fx.poRepo.status(fx.orderID))
}

// Al completar todas las líneas la orden transiciona a received.
func TestReceive_RecepcionCompletaCierraOrden(t *testing.T) {
	fx := newReceiveFixture(t, entity.POStatusSubmitted)

	require.NoError(t, fx.receiveAmount(t, 6))
	require.NoError(t, fx.receiveAmount(t, 4))

	assert.Equal(t, int64(10), fx.poRepo.received(fx.itemID))
	assert.Equal(t, int64(10), fx.stock.quantity(poProductID, poLocationID))
	assert.Equal(t, entity.POStatusReceived, fx.poRepo.status(fx.orderID))
}

// Recibir más de lo pendiente se rechaza con ErrOverReceipt sin tocar nada.
func TestReceive_SobreRecepcionRechazada(t *testing.T) {
	fx := newReceiveFixture(t, entity.POStatusSubmitted)

	require.NoError(t, fx.receiveAmount(t, 8))

	err := fx.receiveAmount(t, 3)
	require.ErrorIs(t, err, domain.ErrOverReceipt)

	assert.Equal(t, int64(8), fx.poRepo.received(fx.itemID), "lo recibido no cambia")
	assert.Equal(t, int64(8), fx.stock.quantity(poProductID, poLocationID))
	assert.Equal(t, 1, fx.ledger.count())
	assert.Equal(t, entity.POStatusSubmitted, fx.poRepo.status(fx.orderID))
}

// Solo una orden en submitted admite recepciones.
func TestReceive_OrdenEnDraftRechazada(t *testing.T) {
	fx := newReceiveFixture(t, entity.POStatusDraft)

	err := fx.receiveAmount(t, 1)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 0, fx.ledger.count())
}

// Cantidad cero o negativa se rechaza antes de cualquier lectura.
func TestReceive_CantidadInvalida(t *testing.T) {
	fx := newReceiveFixture(t, entity.POStatusSubmitted)

	for _, amount := range []int64{0, -2} {
		err := fx.receiveAmount(t, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

// Línea inexistente.
func TestReceive_LineaInexistente(t *testing.T) {
	fx := newReceiveFixture(t, entity.POStatusSubmitted)

	_, _, err := fx.receive.ReceiveLineItem(context.Background(), "no-existe", receiveRequest(1))
	require.ErrorIs(t, err, domain.ErrNotFound)
}
