package entity

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a product held in the warehouse
type Product struct {
	ID         uint           `gorm:"primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	CategoryID *uint          `gorm:"index" json:"category_id,omitempty"`
	BuyPrice   float64        `gorm:"type:decimal(15,2);default:0" json:"buy_price"`
	SellPrice  float64        `gorm:"type:decimal(15,2);default:0" json:"sell_price"`
	Stock      int            `gorm:"default:0" json:"stock"`
	MinStock   int            `gorm:"default:0" json:"min_stock"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product's stock is below its minimum threshold
func (p *Product) IsLowStock() bool {
	return p.Stock < p.MinStock
}
