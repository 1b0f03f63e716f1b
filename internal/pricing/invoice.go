package pricing

import "github.com/shopspring/decimal"

// InvoiceTotal sums the persisted totals of the lines billed to one invoice.
// Subtotal and tax are trusted as stored; an empty slice yields zero.
func InvoiceTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}
	return total
}
