package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/invoiceai/invoice-api/internal/handlers"
	infraRepo "github.com/invoiceai/invoice-api/internal/infra/repository"
	ucInvoice "github.com/invoiceai/invoice-api/internal/usecase/invoice"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewInvoiceGormRepository(db)

	// ======================================================
	// USE CASES — INVOICES
	// ======================================================
	createInvoiceUC := ucInvoice.NewCreateInvoice(repo)
	listInvoicesUC := ucInvoice.NewListInvoices(repo)
	getInvoiceUC := ucInvoice.NewGetInvoice(repo)
	deleteInvoiceUC := ucInvoice.NewDeleteInvoice(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(repo)

	invoiceHandler := handlers.NewInvoiceHandler(
		createInvoiceUC,
		listInvoicesUC,
		getInvoiceUC,
		deleteInvoiceUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id", clientHandler.Get)
		api.PATCH("/clients/:id", clientHandler.Update)

		// ------------------------------
		// INVOICES
		// ------------------------------
		api.POST("/invoices", invoiceHandler.Create)
		api.GET("/invoices", invoiceHandler.List)
		api.GET("/invoices/:id", invoiceHandler.Get)
		api.DELETE("/invoices/:id", invoiceHandler.Delete)
	}
}
