package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-api/internal/domain/inventory"
)

func ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyStock: Low Stock se evalúa primero, Overstocked solo con máximo
// configurado, el resto es Optimal.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStock_Tabla(t *testing.T) {
	cases := []struct {
		nombre   string
		quantity int64
		min      int64
		max      *int64
		esperado string
	}{
		{"bajo el mínimo", 3, 10, ptr(100), inventory.StatusLowStock},
		{"igual al mínimo", 10, 10, ptr(100), inventory.StatusLowStock},
		{"dentro del rango", 50, 10, ptr(100), inventory.StatusOptimal},
		{"igual al máximo", 100, 10, ptr(100), inventory.StatusOverstocked},
		{"sobre el máximo", 150, 10, ptr(100), inventory.StatusOverstocked},
		{"sin máximo configurado nunca es Overstocked", 1_000_000, 10, nil, inventory.StatusOptimal},
		{"min = max = quantity: Low Stock tiene precedencia", 10, 10, ptr(10), inventory.StatusLowStock},
		{"cero con mínimo cero", 0, 0, ptr(5), inventory.StatusLowStock},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.esperado, inventory.ClassifyStock(tc.quantity, tc.min, tc.max))
		})
	}
}

func TestQuantityToOrder(t *testing.T) {
	// Bajo el mínimo: pedir la diferencia exacta.
	assert.Equal(t, int64(7), inventory.QuantityToOrder(3, 10))
	// En o sobre el mínimo: no hay reorden.
	assert.Equal(t, int64(0), inventory.QuantityToOrder(10, 10))
	assert.Equal(t, int64(0), inventory.QuantityToOrder(25, 10))
	// Stock cero cuenta como déficit completo.
	assert.Equal(t, int64(10), inventory.QuantityToOrder(0, 10))
}
