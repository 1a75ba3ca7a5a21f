package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
	"github.com/invoiceai/invoice-api/internal/models"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

// translate maps store errors onto the domain error kinds. Requires
// gorm.Config{TranslateError: true} so both the sqlite and postgres
// drivers report duplicate keys and broken references uniformly.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrConstraintViolation
	}
	return err
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *InvoiceGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return translate(r.db.WithContext(ctx).Create(client).Error)
}

func (r *InvoiceGormRepository) ListActiveClients(
	ctx context.Context,
	skip int,
	limit int,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, translate(err)
	}

	return clients, nil
}

func (r *InvoiceGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *InvoiceGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return translate(r.db.WithContext(ctx).Save(client).Error)
}

// --------------------------------------------------
// Invoice
// --------------------------------------------------

func (r *InvoiceGormRepository) CreateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create inserts the attached Items in the same transaction,
		// each referencing the new invoice id. A duplicate number or
		// a dangling client_id rolls the whole thing back.
		return tx.Create(inv).Error
	})

	return translate(err)
}

func (r *InvoiceGormRepository) ListInvoices(
	ctx context.Context,
	skip int,
	limit int,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&invoices).Error; err != nil {
		return nil, translate(err)
	}

	return invoices, nil
}

func (r *InvoiceGormRepository) GetInvoice(
	ctx context.Context,
	id uint,
) (*models.Invoice, error) {

	var inv models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}

	return &inv, nil
}

func (r *InvoiceGormRepository) DeleteInvoice(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Invoice{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	// Items go with the invoice via the ON DELETE CASCADE constraint.
	return nil
}

// Compile-time check
var _ domain.Repository = (*InvoiceGormRepository)(nil)
