package request

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
}

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
}
