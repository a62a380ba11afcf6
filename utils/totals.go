package utils

import (
	"github.com/shopspring/decimal"
)

// CartLine is the minimum a totals computation needs from a cart or
// order line.
type CartLine struct {
	Price    float64
	Quantity int
}

// Pricing holds the store's checkout rules. Prices are VAT inclusive;
// Tax is the VAT share already contained in the subtotal.
type Pricing struct {
	TaxRate          float64
	ShippingFlat     float64
	FreeShippingOver float64
}

// Totals is a cart/order money breakdown, rounded to cents.
type Totals struct {
	Items        int     `json:"items"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

// LineSubtotal returns price*quantity rounded to cents.
func LineSubtotal(price float64, quantity int) float64 {
	v, _ := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).Round(2).Float64()
	return v
}

// ComputeTotals sums lines. Empty carts cost nothing, shipping included.
// Lines with a non-positive quantity are ignored.
func ComputeTotals(lines []CartLine, p Pricing) Totals {
	subtotal := decimal.Zero
	items := 0
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		items += l.Quantity
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)

	if items == 0 {
		return Totals{}
	}

	shipping := decimal.NewFromFloat(p.ShippingFlat)
	if p.FreeShippingOver > 0 && subtotal.GreaterThanOrEqual(decimal.NewFromFloat(p.FreeShippingOver)) {
		shipping = decimal.Zero
	}

	tax := decimal.Zero
	if p.TaxRate > 0 {
		rate := decimal.NewFromFloat(p.TaxRate)
		tax = subtotal.Sub(subtotal.Div(decimal.NewFromInt(1).Add(rate))).Round(2)
	}

	total := subtotal.Add(shipping).Round(2)

	t := Totals{Items: items}
	t.Subtotal, _ = subtotal.Float64()
	t.Tax, _ = tax.Float64()
	t.ShippingCost, _ = shipping.Round(2).Float64()
	t.Total, _ = total.Float64()
	return t
}
