package entity

import "time"

// LedgerRecord representa un movimiento de inventario en el libro (append-only).
// Inmutable una vez escrito: no existe ruta de actualización ni borrado.
// Quantity siempre se guarda como magnitud positiva; la dirección la da
// exclusivamente el efecto firmado del tipo de transacción.
type LedgerRecord struct {
	ID                string
	ProductID         string
	LocationID        string
	TransactionTypeID string
	Quantity          int64 // magnitud positiva
	TransactionDate   time.Time
	ReferenceNumber   string
	Notes             string
	CreatedBy         string
	CreatedAt         time.Time
}
