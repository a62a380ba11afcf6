package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPricing = Pricing{TaxRate: 0.21, ShippingFlat: 4.95, FreeShippingOver: 60}

func TestComputeTotals_FreeShippingAboveThreshold(t *testing.T) {
	totals := ComputeTotals([]CartLine{
		{Price: 89.95, Quantity: 2},
		{Price: 4.50, Quantity: 1},
	}, testPricing)

	assert.Equal(t, 3, totals.Items)
	assert.Equal(t, 184.40, totals.Subtotal)
	assert.Equal(t, 0.0, totals.ShippingCost)
	assert.Equal(t, 32.00, totals.Tax)
	assert.Equal(t, 184.40, totals.Total)
}

func TestComputeTotals_FlatShippingBelowThreshold(t *testing.T) {
	totals := ComputeTotals([]CartLine{{Price: 19.99, Quantity: 1}}, testPricing)

	assert.Equal(t, 19.99, totals.Subtotal)
	assert.Equal(t, 4.95, totals.ShippingCost)
	assert.Equal(t, 3.47, totals.Tax)
	assert.Equal(t, 24.94, totals.Total)
}

func TestComputeTotals_EmptyCartIsFree(t *testing.T) {
	assert.Equal(t, Totals{}, ComputeTotals(nil, testPricing))
	assert.Equal(t, Totals{}, ComputeTotals([]CartLine{{Price: 10, Quantity: 0}}, testPricing))
}

func TestComputeTotals_AvoidsFloatDrift(t *testing.T) {
	lines := make([]CartLine, 0, 10)
	for i := 0; i < 10; i++ {
		lines = append(lines, CartLine{Price: 0.1, Quantity: 1})
	}
	totals := ComputeTotals(lines, Pricing{})

	assert.Equal(t, 1.0, totals.Subtotal)
	assert.Equal(t, 1.0, totals.Total)
}

func TestLineSubtotal(t *testing.T) {
	assert.Equal(t, 59.97, LineSubtotal(19.99, 3))
	assert.Equal(t, 0.0, LineSubtotal(19.99, 0))
}
