package inventory

// Clasificación de estado de stock para la vista de inventario actual.
const (
	StatusLowStock    = "Low Stock"
	StatusOverstocked = "Overstocked"
	StatusOptimal     = "Optimal"
)

// ClassifyStock clasifica el estado de stock de un producto (servicio de dominio).
// Low Stock si quantity <= minLevel; Overstocked si quantity >= maxLevel y el
// máximo está configurado. Si ambos umbrales se cumplen a la vez (ej. min = max),
// Low Stock tiene precedencia porque se evalúa primero. Con maxLevel nil la
// clasificación Overstocked no aplica nunca.
func ClassifyStock(quantity, minLevel int64, maxLevel *int64) string {
	if quantity <= minLevel {
		return StatusLowStock
	}
	if maxLevel != nil && quantity >= *maxLevel {
		return StatusOverstocked
	}
	return StatusOptimal
}

// QuantityToOrder devuelve la cantidad sugerida de pedido para un producto cuyo
// stock sumado entre todas las ubicaciones está por debajo de su mínimo.
// Devuelve 0 si el producto no requiere reorden (summed >= minLevel).
func QuantityToOrder(summed, minLevel int64) int64 {
	if summed >= minLevel {
		return 0
	}
	return minLevel - summed
}
