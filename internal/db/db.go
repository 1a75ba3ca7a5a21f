package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/invoiceai/invoice-api/internal/config"
	"github.com/invoiceai/invoice-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	dialector := sqlite.Open(cfg.SQLitePath + "?_foreign_keys=on")
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	}

	// TranslateError gives portable duplicate-key and foreign-key
	// errors on both drivers; the repository depends on it.
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates the clients, invoices and invoice_items tables with
// their unique and foreign key constraints. Runs before first use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
}
