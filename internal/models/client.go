package models

import "time"

// Billable party. Email is optional but unique when present.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null;index" json:"name"`
	Email *string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone string  `gorm:"size:20" json:"phone"`

	Address     string `gorm:"type:text" json:"address"`
	CompanyName string `gorm:"size:100" json:"company_name"`
	TaxID       string `gorm:"size:50" json:"tax_id"`
	Notes       string `gorm:"type:text" json:"notes"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
