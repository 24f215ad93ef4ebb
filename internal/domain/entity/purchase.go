package entity

import (
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Purchase represents a committed purchase from a supplier
type Purchase struct {
	ID              uint               `gorm:"primary_key" json:"id"`
	ReferenceNo     string             `gorm:"size:100;unique;not null" json:"reference_no"`
	SupplierID      uint               `gorm:"not null;index" json:"supplier_id"`
	Date            time.Time          `gorm:"not null" json:"date"`
	Total           float64            `gorm:"type:decimal(15,2);default:0" json:"total"`
	PaymentType     enum.PaymentType   `gorm:"size:50;default:'cash'" json:"payment_type"`
	PaidAmount      float64            `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	RemainingAmount float64            `gorm:"type:decimal(15,2);default:0" json:"remaining_amount"`
	PaymentStatus   enum.PaymentStatus `gorm:"size:50;default:'unpaid'" json:"payment_status"`
	Notes           string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedByID     *uint              `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem represents a line item in a purchase
type PurchaseItem struct {
	ID          uint    `gorm:"primary_key" json:"id"`
	PurchaseID  uint    `gorm:"not null;index" json:"purchase_id"`
	ProductID   uint    `gorm:"not null;index" json:"product_id"`
	ProductName string  `gorm:"size:255;not null" json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Discount    float64 `gorm:"type:decimal(15,2);default:0" json:"discount"`
	LineTotal   float64 `gorm:"type:decimal(15,2);not null" json:"line_total"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
