package purchasing

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de compras e inventario atados a esa tx. La recepción de una
// línea y su movimiento Purchase en el libro deben confirmarse como una sola
// unidad atómica.
type TxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
		poRepo repository.PurchaseOrderRepository,
	) error) error
}
