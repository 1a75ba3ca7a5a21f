package invoice

import (
	"context"
	"time"

	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
	"github.com/invoiceai/invoice-api/internal/httperr"
	"github.com/invoiceai/invoice-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Total       float64
}

type CreateInvoiceInput struct {
	InvoiceNumber string
	ClientID      uint

	DueDate      *time.Time
	Status       string
	Notes        string
	PaymentTerms string
	TaxRate      float64

	Items []ItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateInvoice struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCreateInvoice(repo domain.Repository) *CreateInvoice {
	return &CreateInvoice{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the issue-date clock. Tests only.
func (uc *CreateInvoice) WithClock(now func() time.Time) *CreateInvoice {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateInvoice) Execute(
	ctx context.Context,
	in CreateInvoiceInput,
) (*models.Invoice, error) {

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	items := make([]models.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}

		items = append(items, models.InvoiceItem{
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}

	_, taxAmount, totalAmount := domain.Totals(items, in.TaxRate)

	inv := &models.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		ClientID:      in.ClientID,
		IssueDate:     uc.now(),
		DueDate:       in.DueDate,
		Status:        string(status),
		TaxRate:       in.TaxRate,
		TaxAmount:     taxAmount,
		TotalAmount:   totalAmount,
		Notes:         in.Notes,
		PaymentTerms:  in.PaymentTerms,
		Items:         items,
	}

	if err := uc.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}
