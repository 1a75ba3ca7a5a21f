package invoice

import (
	"testing"

	"github.com/invoiceai/invoice-api/internal/models"
)

func items(totals ...float64) []models.InvoiceItem {
	out := make([]models.InvoiceItem, 0, len(totals))
	for _, t := range totals {
		out = append(out, models.InvoiceItem{Description: "line", Quantity: 1, UnitPrice: t, Total: t})
	}
	return out
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name        string
		items       []models.InvoiceItem
		taxRate     float64
		subtotal    float64
		taxAmount   float64
		totalAmount float64
	}{
		{
			name:        "single item with tax",
			items:       items(100),
			taxRate:     10.0,
			subtotal:    100,
			taxAmount:   10,
			totalAmount: 110,
		},
		{
			name:        "two items zero tax",
			items:       items(50, 25),
			taxRate:     0,
			subtotal:    75,
			taxAmount:   0,
			totalAmount: 75,
		},
		{
			name:        "empty items ignore tax rate",
			items:       nil,
			taxRate:     21.0,
			subtotal:    0,
			taxAmount:   0,
			totalAmount: 0,
		},
		{
			name:        "fractional rate",
			items:       items(2500, 1200),
			taxRate:     8.5,
			subtotal:    3700,
			taxAmount:   3700 * (8.5 / 100),
			totalAmount: 3700 + 3700*(8.5/100),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			subtotal, taxAmount, totalAmount := Totals(tc.items, tc.taxRate)

			if subtotal != tc.subtotal {
				t.Errorf("subtotal = %v, want %v", subtotal, tc.subtotal)
			}
			if taxAmount != tc.taxAmount {
				t.Errorf("taxAmount = %v, want %v", taxAmount, tc.taxAmount)
			}
			if totalAmount != tc.totalAmount {
				t.Errorf("totalAmount = %v, want %v", totalAmount, tc.totalAmount)
			}
		})
	}
}

// Results must compose as sum-first-then-multiply, bit for bit.
func TestTotalsCompositionOrder(t *testing.T) {
	in := items(0.1, 0.2, 0.3)
	rate := 7.7

	subtotal, taxAmount, totalAmount := Totals(in, rate)

	var sum float64
	for _, it := range in {
		sum += it.Total
	}

	if subtotal != sum {
		t.Fatalf("subtotal = %v, want %v", subtotal, sum)
	}
	if taxAmount != sum*(rate/100) {
		t.Errorf("taxAmount = %v, want %v", taxAmount, sum*(rate/100))
	}
	if totalAmount != sum+sum*(rate/100) {
		t.Errorf("totalAmount = %v, want %v", totalAmount, sum+sum*(rate/100))
	}
}

func TestTotalsDoesNotRederiveLineTotals(t *testing.T) {
	// The caller-supplied total wins even when it disagrees with
	// quantity times unit price.
	in := []models.InvoiceItem{
		{Description: "mismatched", Quantity: 3, UnitPrice: 10, Total: 50},
	}

	subtotal, _, _ := Totals(in, 0)
	if subtotal != 50 {
		t.Fatalf("subtotal = %v, want 50", subtotal)
	}
}
