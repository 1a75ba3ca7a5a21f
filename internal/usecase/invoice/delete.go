package invoice

import (
	"context"

	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
)

type DeleteInvoice struct {
	repo domain.Repository
}

func NewDeleteInvoice(repo domain.Repository) *DeleteInvoice {
	return &DeleteInvoice{repo: repo}
}

func (uc *DeleteInvoice) Execute(ctx context.Context, id uint) error {
	return uc.repo.DeleteInvoice(ctx, id)
}
