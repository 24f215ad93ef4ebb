package request

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID *uint   `json:"customer_id"`
	Date       string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Total      float64 `json:"total" binding:"min=0"`
	Notes      string  `json:"notes"`
}

// PurchaseFilterRequest represents purchase filter parameters
type PurchaseFilterRequest struct {
	SupplierID uint   `form:"supplier_id"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
