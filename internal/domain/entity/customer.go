package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer the warehouse sells to
type Customer struct {
	ID        uint           `gorm:"primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     string         `gorm:"size:50" json:"phone,omitempty"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	Debt      float64        `gorm:"type:decimal(15,2);default:0" json:"debt"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
