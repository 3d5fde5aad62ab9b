package entity

// Nombres de los tipos de transacción sembrados en la inicialización.
// El efecto sobre inventario nunca se reinterpreta en el punto de llamada:
// el motor siempre multiplica la cantidad solicitada por AffectsInventory.
const (
	TxTypePurchase    = "Purchase"     // +1
	TxTypeSale        = "Sale"         // -1
	TxTypeAdjustment  = "Adjustment"   //  0
	TxTypeTransferIn  = "Transfer In"  // +1
	TxTypeTransferOut = "Transfer Out" // -1
	TxTypeReturnIn    = "Return In"    // +1
	TxTypeReturnOut   = "Return Out"   // -1
	TxTypeWriteOff    = "Write Off"    // -1
	TxTypeCountIn     = "Count In"     // +1, sobrante detectado en conteo físico
	TxTypeCountOut    = "Count Out"    // -1, faltante detectado en conteo físico
)

// TransactionType define un tipo de movimiento con su efecto firmado sobre inventario.
// AffectsInventory ∈ {-1, 0, +1}.
type TransactionType struct {
	ID               string
	Name             string // único
	AffectsInventory int
	Description      string
}
