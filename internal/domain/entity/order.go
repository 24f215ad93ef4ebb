package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order represents a sale to a customer
type Order struct {
	ID         uint           `gorm:"primary_key" json:"id"`
	CustomerID *uint          `gorm:"index" json:"customer_id,omitempty"`
	Date       time.Time      `gorm:"not null" json:"date"`
	Total      float64        `gorm:"type:decimal(15,2);default:0" json:"total"`
	Notes      string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
