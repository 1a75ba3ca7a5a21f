package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
	"github.com/invoiceai/invoice-api/internal/httperr"
	"github.com/invoiceai/invoice-api/internal/httpresp"
	"github.com/invoiceai/invoice-api/internal/models"
)

type ClientHandler struct {
	repo domain.Repository
}

func NewClientHandler(repo domain.Repository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	CompanyName string  `json:"company_name"`
	TaxID       string  `json:"tax_id"`
	Notes       string  `json:"notes"`
}

type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	TaxID       *string `json:"tax_id,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	client := models.Client{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CompanyName: req.CompanyName,
		TaxID:       req.TaxID,
		Notes:       req.Notes,
		IsActive:    true,
	}

	if err := h.repo.CreateClient(c.Request.Context(), &client); err != nil {
		if errors.Is(err, domain.ErrConstraintViolation) {
			httperr.Conflict(c, "email_already_exists", "A client with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_client", "Could not create client.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// LIST (active only)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	skip, limit := parsePagination(c)

	clients, err := h.repo.ListActiveClients(c.Request.Context(), skip, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Client id must be numeric.")
		return
	}

	client, err := h.repo.GetClient(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not load client.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// UPDATE (partial, covers soft-deactivation)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Client id must be numeric.")
		return
	}

	client, err := h.repo.GetClient(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not load client.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}
	if req.TaxID != nil {
		client.TaxID = *req.TaxID
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateClient(c.Request.Context(), client); err != nil {
		if errors.Is(err, domain.ErrConstraintViolation) {
			httperr.Conflict(c, "email_already_exists", "A client with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "Could not update client.")
		return
	}

	c.JSON(http.StatusOK, client)
}
