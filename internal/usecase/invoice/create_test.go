package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/invoiceai/invoice-api/internal/httperr"
	"github.com/invoiceai/invoice-api/internal/models"
)

// stubRepo records the invoice handed to CreateInvoice and assigns
// ids, standing in for the store.
type stubRepo struct {
	created   *models.Invoice
	createErr error
}

func (s *stubRepo) CreateClient(ctx context.Context, c *models.Client) error { return nil }
func (s *stubRepo) ListActiveClients(ctx context.Context, skip, limit int) ([]models.Client, error) {
	return nil, nil
}
func (s *stubRepo) GetClient(ctx context.Context, id uint) (*models.Client, error) { return nil, nil }
func (s *stubRepo) UpdateClient(ctx context.Context, c *models.Client) error       { return nil }

func (s *stubRepo) CreateInvoice(ctx context.Context, inv *models.Invoice) error {
	if s.createErr != nil {
		return s.createErr
	}
	inv.ID = 1
	for i := range inv.Items {
		inv.Items[i].ID = uint(i + 1)
		inv.Items[i].InvoiceID = inv.ID
	}
	s.created = inv
	return nil
}

func (s *stubRepo) ListInvoices(ctx context.Context, skip, limit int) ([]models.Invoice, error) {
	return nil, nil
}
func (s *stubRepo) GetInvoice(ctx context.Context, id uint) (*models.Invoice, error) {
	return nil, nil
}
func (s *stubRepo) DeleteInvoice(ctx context.Context, id uint) error { return nil }

func TestCreateInvoiceComputesTotals(t *testing.T) {
	repo := &stubRepo{}
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := NewCreateInvoice(repo).WithClock(func() time.Time { return issuedAt })

	inv, err := uc.Execute(context.Background(), CreateInvoiceInput{
		InvoiceNumber: "INV-1",
		ClientID:      1,
		TaxRate:       10.0,
		Items: []ItemInput{
			{Description: "Work", Quantity: 1, UnitPrice: 100, Total: 100},
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if inv.TaxAmount != 10.0 {
		t.Errorf("tax amount = %v, want 10", inv.TaxAmount)
	}
	if inv.TotalAmount != 110.0 {
		t.Errorf("total amount = %v, want 110", inv.TotalAmount)
	}
	if !inv.IssueDate.Equal(issuedAt) {
		t.Errorf("issue date = %v, want %v", inv.IssueDate, issuedAt)
	}
	if inv.Status != "draft" {
		t.Errorf("status = %q, want draft by default", inv.Status)
	}
	if repo.created == nil {
		t.Fatal("invoice never reached the repository")
	}
}

func TestCreateInvoiceDefaultsItemQuantity(t *testing.T) {
	repo := &stubRepo{}
	uc := NewCreateInvoice(repo)

	inv, err := uc.Execute(context.Background(), CreateInvoiceInput{
		InvoiceNumber: "INV-2",
		ClientID:      1,
		Items: []ItemInput{
			{Description: "Flat fee", UnitPrice: 500, Total: 500},
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if inv.Items[0].Quantity != 1 {
		t.Fatalf("quantity = %v, want default 1", inv.Items[0].Quantity)
	}
}

func TestCreateInvoiceEmptyItems(t *testing.T) {
	repo := &stubRepo{}
	uc := NewCreateInvoice(repo)

	inv, err := uc.Execute(context.Background(), CreateInvoiceInput{
		InvoiceNumber: "INV-3",
		ClientID:      1,
		TaxRate:       19.0,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if inv.TaxAmount != 0 || inv.TotalAmount != 0 {
		t.Fatalf("empty invoice totals = %v / %v, want 0 / 0", inv.TaxAmount, inv.TotalAmount)
	}
}

func TestCreateInvoiceRejectsUnknownStatus(t *testing.T) {
	uc := NewCreateInvoice(&stubRepo{})

	_, err := uc.Execute(context.Background(), CreateInvoiceInput{
		InvoiceNumber: "INV-4",
		ClientID:      1,
		Status:        "archived",
	})
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status business error, got %v", err)
	}
}
