package request

// AddItemRequest represents an add-to-draft request
type AddItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
	Discount  float64 `json:"discount" binding:"min=0"`
}

// LineTotalRequest represents a line total preview request
type LineTotalRequest struct {
	Quantity  int     `form:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `form:"unit_price" binding:"min=0"`
	Discount  float64 `form:"discount" binding:"min=0"`
}

// CheckoutRequest represents a draft checkout request
type CheckoutRequest struct {
	SupplierID  uint    `json:"supplier_id"`
	Date        string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	PaymentType string  `json:"payment_type"`
	PaidAmount  float64 `json:"paid_amount" binding:"min=0"`
	Notes       string  `json:"notes"`
}
