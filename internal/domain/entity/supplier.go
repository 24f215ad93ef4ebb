package entity

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a supplier the warehouse buys from
type Supplier struct {
	ID        uint           `gorm:"primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     string         `gorm:"size:50" json:"phone,omitempty"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	Debt      float64        `gorm:"type:decimal(15,2);default:0" json:"debt"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
