package invoice

import (
	"context"

	"github.com/invoiceai/invoice-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	ListActiveClients(
		ctx context.Context,
		skip int,
		limit int,
	) ([]models.Client, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Invoice --------

	// CreateInvoice persists the invoice row and every attached item
	// as one transaction. A constraint failure leaves nothing behind.
	CreateInvoice(
		ctx context.Context,
		inv *models.Invoice,
	) error

	ListInvoices(
		ctx context.Context,
		skip int,
		limit int,
	) ([]models.Invoice, error)

	GetInvoice(
		ctx context.Context,
		id uint,
	) (*models.Invoice, error)

	DeleteInvoice(
		ctx context.Context,
		id uint,
	) error
}
