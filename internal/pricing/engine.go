// Package pricing computes cart totals. Everything here is a pure function
// over cart lines; money stays in decimal form and is only rounded by the
// presentation layer.
package pricing

import (
	"github.com/fjod/go_pos/internal/cart"
	"github.com/shopspring/decimal"
)

// Rates configures the billing constants.
type Rates struct {
	TaxRate           decimal.Decimal `json:"tax_rate"`
	DiscountRate      decimal.Decimal `json:"discount_rate"`
	DiscountThreshold decimal.Decimal `json:"discount_threshold"`
}

// DefaultRates returns 18% tax, 10% discount above a 200.00 subtotal.
func DefaultRates() Rates {
	return Rates{
		TaxRate:           decimal.NewFromFloat(0.18),
		DiscountRate:      decimal.NewFromFloat(0.10),
		DiscountThreshold: decimal.NewFromInt(200),
	}
}

// Totals is the computed bill for a set of cart lines.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// PaidQty returns how many units are actually charged. Under the
// buy-one-get-one offer every second unit is free and an odd remainder is
// paid, so paid = ceil(qty/2). The customer receives exactly qty units.
func PaidQty(qty int, bogo bool) int {
	if !bogo {
		return qty
	}
	return (qty + 1) / 2
}

// LineTotal returns the charged amount for a single line.
func LineTotal(line cart.Line) decimal.Decimal {
	return line.UnitPrice.Mul(decimal.NewFromInt(int64(PaidQty(line.Qty, line.BOGO))))
}

// ComputeTotals computes the bill for the given lines. The discount applies
// only when the subtotal strictly exceeds the threshold; tax applies to the
// discounted subtotal.
func (r Rates) ComputeTotals(lines []cart.Line) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line))
	}

	discount := decimal.Zero
	if subtotal.GreaterThan(r.DiscountThreshold) {
		discount = subtotal.Mul(r.DiscountRate)
	}

	taxed := subtotal.Sub(discount)
	tax := taxed.Mul(r.TaxRate)

	return Totals{
		Subtotal:   subtotal,
		Discount:   discount,
		Tax:        tax,
		GrandTotal: taxed.Add(tax),
	}
}
