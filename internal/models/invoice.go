package models

import "time"

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InvoiceNumber string `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE" json:"-"`

	IssueDate time.Time  `json:"issue_date"`
	DueDate   *time.Time `json:"due_date"`

	Status string `gorm:"size:20;default:'draft'" json:"status"`

	// TotalAmount and TaxAmount are derived from the items and the
	// tax rate, never accepted from the caller.
	TotalAmount float64 `gorm:"default:0" json:"total_amount"`
	TaxRate     float64 `gorm:"default:0" json:"tax_rate"`
	TaxAmount   float64 `gorm:"default:0" json:"tax_amount"`

	Notes        string `gorm:"type:text" json:"notes"`
	PaymentTerms string `gorm:"type:text" json:"payment_terms"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"not null;index" json:"invoice_id"`

	Description string  `gorm:"size:200;not null" json:"description"`
	Quantity    float64 `gorm:"default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	Total       float64 `gorm:"not null" json:"total"`
}
