package dto

import "time"

type InvoiceListDTO struct {
	ID            uint       `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	ClientID      uint       `json:"client_id"`
	Status        string     `json:"status"`
	IssueDate     time.Time  `json:"issue_date"`
	DueDate       *time.Time `json:"due_date"`
	TaxRate       float64    `json:"tax_rate"`
	TaxAmount     float64    `json:"tax_amount"`
	TotalAmount   float64    `json:"total_amount"`
}
