package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
	"github.com/invoiceai/invoice-api/internal/dto"
	"github.com/invoiceai/invoice-api/internal/httperr"
	"github.com/invoiceai/invoice-api/internal/httpresp"
	ucInvoice "github.com/invoiceai/invoice-api/internal/usecase/invoice"
)

// ======================================================
// HANDLER
// ======================================================

type InvoiceHandler struct {
	createUC *ucInvoice.CreateInvoice
	listUC   *ucInvoice.ListInvoices
	getUC    *ucInvoice.GetInvoice
	deleteUC *ucInvoice.DeleteInvoice
}

func NewInvoiceHandler(
	createUC *ucInvoice.CreateInvoice,
	listUC *ucInvoice.ListInvoices,
	getUC *ucInvoice.GetInvoice,
	deleteUC *ucInvoice.DeleteInvoice,
) *InvoiceHandler {
	return &InvoiceHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateInvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gte=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	Total       float64 `json:"total" binding:"gte=0"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber string     `json:"invoice_number" binding:"required"`
	ClientID      uint       `json:"client_id" binding:"required"`
	DueDate       *time.Time `json:"due_date"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	PaymentTerms  string     `json:"payment_terms"`
	TaxRate       float64    `json:"tax_rate" binding:"gte=0"`

	Items []CreateInvoiceItemRequest `json:"items" binding:"dive"`
}

// ======================================================
// CREATE
// ======================================================

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid invoice payload.")
		return
	}

	items := make([]ucInvoice.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ucInvoice.ItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}

	inv, err := h.createUC.Execute(c.Request.Context(), ucInvoice.CreateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		DueDate:       req.DueDate,
		Status:        req.Status,
		Notes:         req.Notes,
		PaymentTerms:  req.PaymentTerms,
		TaxRate:       req.TaxRate,
		Items:         items,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be one of draft, sent, paid, overdue, cancelled.")
		case errors.Is(err, domain.ErrConstraintViolation):
			httperr.Conflict(c, "invoice_conflict", "Duplicate invoice number or unknown client.")
		default:
			httperr.Internal(c, "failed_to_create_invoice", "Could not create invoice.")
		}
		return
	}

	httpresp.Created(c, inv)
}

// ======================================================
// LIST
// ======================================================

func (h *InvoiceHandler) List(c *gin.Context) {
	skip, limit := parsePagination(c)

	invoices, err := h.listUC.Execute(c.Request.Context(), skip, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Could not list invoices.")
		return
	}

	out := make([]dto.InvoiceListDTO, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.InvoiceListDTO{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			ClientID:      inv.ClientID,
			Status:        inv.Status,
			IssueDate:     inv.IssueDate,
			DueDate:       inv.DueDate,
			TaxRate:       inv.TaxRate,
			TaxAmount:     inv.TaxAmount,
			TotalAmount:   inv.TotalAmount,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// GET (invoice + items)
// ======================================================

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_invoice_id", "Invoice id must be numeric.")
		return
	}

	inv, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_invoice", "Could not load invoice.")
		return
	}

	httpresp.OK(c, inv)
}

// ======================================================
// DELETE (items cascade with the invoice)
// ======================================================

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_invoice_id", "Invoice id must be numeric.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_invoice", "Could not delete invoice.")
		return
	}

	c.Status(http.StatusNoContent)
}
