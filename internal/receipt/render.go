package receipt

import (
	"fmt"
	"strings"
)

const currencySymbol = "₹"

// Render returns the plain-text form of the receipt.
func Render(r Receipt) string {
	var b strings.Builder

	b.WriteString("===== SUPERMARKET RECEIPT =====\n")
	fmt.Fprintf(&b, "Customer: %s\n", r.Customer)
	fmt.Fprintf(&b, "Order: %s\n", r.OrderID)
	fmt.Fprintf(&b, "Date: %s\n", r.IssuedAt.Format("2006-01-02"))
	b.WriteString("----------------------------------\n")

	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%s x%d = %s%s", row.Name, row.Qty, currencySymbol, row.LineTotal.StringFixed(2))
		if row.BOGO {
			b.WriteString(" (BOGO)")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Subtotal: %s%s\n", currencySymbol, r.Display.Subtotal)
	fmt.Fprintf(&b, "Discount: %s%s\n", currencySymbol, r.Display.Discount)
	fmt.Fprintf(&b, "GST: %s%s\n", currencySymbol, r.Display.Tax)
	fmt.Fprintf(&b, "Total: %s%s\n", currencySymbol, r.Display.GrandTotal)
	b.WriteString("===============================\n")

	return b.String()
}

// FileName returns the receipt file name for a customer, unique per order.
func FileName(customer string, unixTime int64) string {
	return fmt.Sprintf("receipt_%s_%d.txt", customer, unixTime)
}
