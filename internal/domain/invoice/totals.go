package invoice

import "github.com/invoiceai/invoice-api/internal/models"

// ===============================
// Totals
// ===============================

// Totals derives the subtotal, tax amount and grand total for a set
// of line items and a tax rate given as a percentage.
//
// Each item's Total is taken as supplied; it is never recomputed from
// Quantity × UnitPrice here. The sum is taken first and the tax rate
// applied once to the sum, so results follow that exact floating
// point composition order. No rounding is applied.
func Totals(items []models.InvoiceItem, taxRate float64) (subtotal, taxAmount, totalAmount float64) {
	for _, it := range items {
		subtotal += it.Total
	}

	taxAmount = subtotal * (taxRate / 100)
	totalAmount = subtotal + taxAmount

	return subtotal, taxAmount, totalAmount
}
