// Package receipt packages a finalized order into the record handed to the
// persistence and display collaborators. The record carries both the exact
// decimal totals and their 2-decimal presentation form.
package receipt

import (
	"time"

	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/pricing"
	"github.com/shopspring/decimal"
)

// Row is one receipt line.
type Row struct {
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	PaidQty   int             `json:"paid_qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	BOGO      bool            `json:"bogo"`
}

// DisplayTotals are the totals rounded to 2 decimals for rendering.
type DisplayTotals struct {
	Subtotal   string `json:"subtotal"`
	Discount   string `json:"discount"`
	Tax        string `json:"tax"`
	GrandTotal string `json:"grand_total"`
}

// Receipt is the immutable record of a checked-out order.
type Receipt struct {
	OrderID  string         `json:"order_id"`
	Customer string         `json:"customer"`
	IssuedAt time.Time      `json:"issued_at"`
	Rows     []Row          `json:"rows"`
	Totals   pricing.Totals `json:"totals"`
	Display  DisplayTotals  `json:"display"`
}

// Build assembles the receipt record for a finalized order.
func Build(orderID, customer string, issuedAt time.Time, lines []cart.Line, totals pricing.Totals) Receipt {
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, Row{
			Name:      line.Name,
			Qty:       line.Qty,
			PaidQty:   pricing.PaidQty(line.Qty, line.BOGO),
			UnitPrice: line.UnitPrice,
			LineTotal: pricing.LineTotal(line),
			BOGO:      line.BOGO,
		})
	}

	return Receipt{
		OrderID:  orderID,
		Customer: customer,
		IssuedAt: issuedAt,
		Rows:     rows,
		Totals:   totals,
		Display: DisplayTotals{
			Subtotal:   totals.Subtotal.StringFixed(2),
			Discount:   totals.Discount.StringFixed(2),
			Tax:        totals.Tax.StringFixed(2),
			GrandTotal: totals.GrandTotal.StringFixed(2),
		},
	}
}
