package invoice

import (
	"context"

	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
	"github.com/invoiceai/invoice-api/internal/models"
)

type ListInvoices struct {
	repo domain.Repository
}

func NewListInvoices(repo domain.Repository) *ListInvoices {
	return &ListInvoices{repo: repo}
}

// Execute expects skip and limit already bounded by the caller.
func (uc *ListInvoices) Execute(
	ctx context.Context,
	skip int,
	limit int,
) ([]models.Invoice, error) {
	return uc.repo.ListInvoices(ctx, skip, limit)
}
