package invoice

import (
	"context"

	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
	"github.com/invoiceai/invoice-api/internal/models"
)

type GetInvoice struct {
	repo domain.Repository
}

func NewGetInvoice(repo domain.Repository) *GetInvoice {
	return &GetInvoice{repo: repo}
}

func (uc *GetInvoice) Execute(
	ctx context.Context,
	id uint,
) (*models.Invoice, error) {
	return uc.repo.GetInvoice(ctx, id)
}
