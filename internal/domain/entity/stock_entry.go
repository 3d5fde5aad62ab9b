package entity

import "time"

// StockEntry representa la cantidad actual de un producto en una ubicación
// (par único producto+ubicación). Es una caché materializada del libro de
// movimientos: siempre debe poder reconstruirse reproduciendo el Ledger
// agrupado por (producto, ubicación) y sumando cantidad × efecto del tipo.
// Invariante: Quantity >= 0 después de cada transacción confirmada.
type StockEntry struct {
	ID            string
	ProductID     string
	LocationID    string
	Quantity      int64
	LastCountedAt *time.Time // último conteo físico
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
