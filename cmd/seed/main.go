package main

import (
	"log"
	"time"

	"github.com/invoiceai/invoice-api/internal/config"
	dbpkg "github.com/invoiceai/invoice-api/internal/db"
	domain "github.com/invoiceai/invoice-api/internal/domain/invoice"
	"github.com/invoiceai/invoice-api/internal/models"
	"gorm.io/gorm"
)

// Development seeding utility. Wipes the three tables and loads a
// representative sample set. Not part of the serving API.
func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	if err := seed(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func strptr(s string) *string { return &s }

func dueIn(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}

func seed(db *gorm.DB) error {

	// Clear existing data, children first.
	db.Exec("DELETE FROM invoice_items")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM clients")

	log.Println("cleared existing data")

	clients := []models.Client{
		{
			Name:        "Acme Corporation",
			Email:       strptr("billing@acme.com"),
			Phone:       "+1-555-0101",
			Address:     "123 Business Ave, Suite 100\nNew York, NY 10001",
			CompanyName: "Acme Corporation",
			TaxID:       "US-123-456-789",
			Notes:       "Preferred client, net 30 terms",
			IsActive:    true,
		},
		{
			Name:        "Tech Innovations LLC",
			Email:       strptr("accounting@techinnovations.com"),
			Phone:       "+1-555-0102",
			Address:     "456 Tech Drive\nSan Francisco, CA 94105",
			CompanyName: "Tech Innovations LLC",
			TaxID:       "US-987-654-321",
			Notes:       "Fast payer, net 15 terms",
			IsActive:    true,
		},
		{
			Name:        "Global Solutions Inc",
			Email:       strptr("finance@globalsolutions.com"),
			Phone:       "+1-555-0103",
			Address:     "789 World Street\nChicago, IL 60601",
			CompanyName: "Global Solutions Inc",
			TaxID:       "US-456-789-123",
			Notes:       "Large corporation, net 45 terms",
			IsActive:    true,
		},
		{
			Name:        "Startup Ventures",
			Email:       strptr("ops@startupventures.com"),
			Phone:       "+1-555-0104",
			Address:     "321 Innovation Lane\nAustin, TX 73301",
			CompanyName: "Startup Ventures",
			TaxID:       "US-789-123-456",
			Notes:       "New client, watch payment terms",
			IsActive:    true,
		},
	}

	if err := db.Create(&clients).Error; err != nil {
		return err
	}
	log.Printf("created %d sample clients", len(clients))

	invoices := []models.Invoice{
		{
			InvoiceNumber: "INV-2024-001",
			ClientID:      clients[0].ID,
			DueDate:       dueIn(30),
			Status:        string(domain.StatusSent),
			Notes:         "Web development services for Q1 2024",
			PaymentTerms:  "Net 30",
			TaxRate:       10.0,
			Items: []models.InvoiceItem{
				{Description: "Frontend development (40 hours)", Quantity: 40, UnitPrice: 75.00, Total: 3000.00},
				{Description: "Backend API development (30 hours)", Quantity: 30, UnitPrice: 85.00, Total: 2550.00},
			},
		},
		{
			InvoiceNumber: "INV-2024-002",
			ClientID:      clients[0].ID,
			DueDate:       dueIn(15),
			Status:        string(domain.StatusDraft),
			Notes:         "Monthly maintenance contract",
			PaymentTerms:  "Net 15",
			TaxRate:       10.0,
			Items: []models.InvoiceItem{
				{Description: "Monthly website maintenance", Quantity: 1, UnitPrice: 500.00, Total: 500.00},
			},
		},
		{
			InvoiceNumber: "INV-2024-003",
			ClientID:      clients[1].ID,
			DueDate:       dueIn(20),
			Status:        string(domain.StatusPaid),
			Notes:         "AI integration project - completed",
			PaymentTerms:  "Net 20",
			TaxRate:       8.5,
			Items: []models.InvoiceItem{
				{Description: "AI model integration", Quantity: 1, UnitPrice: 2500.00, Total: 2500.00},
				{Description: "Data preprocessing services", Quantity: 1, UnitPrice: 1200.00, Total: 1200.00},
			},
		},
		{
			InvoiceNumber: "INV-2024-004",
			ClientID:      clients[2].ID,
			DueDate:       dueIn(45),
			Status:        string(domain.StatusSent),
			Notes:         "Annual software license renewal",
			PaymentTerms:  "Net 45",
			TaxRate:       9.0,
			Items: []models.InvoiceItem{
				{Description: "Enterprise software license", Quantity: 1, UnitPrice: 15000.00, Total: 15000.00},
			},
		},
		{
			InvoiceNumber: "INV-2024-005",
			ClientID:      clients[3].ID,
			DueDate:       dueIn(10),
			Status:        string(domain.StatusOverdue),
			Notes:         "Initial consultation and setup",
			PaymentTerms:  "Net 10",
			TaxRate:       0.0, // startup discount
			Items: []models.InvoiceItem{
				{Description: "Initial consultation (2 hours)", Quantity: 2, UnitPrice: 100.00, Total: 200.00},
				{Description: "Project setup and configuration", Quantity: 1, UnitPrice: 300.00, Total: 300.00},
			},
		},
	}

	itemCount := 0
	for i := range invoices {
		invoices[i].IssueDate = time.Now()

		_, taxAmount, totalAmount := domain.Totals(invoices[i].Items, invoices[i].TaxRate)
		invoices[i].TaxAmount = taxAmount
		invoices[i].TotalAmount = totalAmount

		itemCount += len(invoices[i].Items)
	}

	if err := db.Create(&invoices).Error; err != nil {
		return err
	}

	log.Printf("created %d sample invoices with %d items", len(invoices), itemCount)
	log.Println("seeding completed")

	return nil
}
