package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=255"`
	CategoryID *uint   `json:"category_id"`
	BuyPrice   float64 `json:"buy_price" binding:"min=0"`
	SellPrice  float64 `json:"sell_price" binding:"min=0"`
	Stock      int     `json:"stock" binding:"min=0"`
	MinStock   int     `json:"min_stock" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=2,max=255"`
	CategoryID *uint    `json:"category_id"`
	BuyPrice   *float64 `json:"buy_price" binding:"omitempty,min=0"`
	SellPrice  *float64 `json:"sell_price" binding:"omitempty,min=0"`
	Stock      *int     `json:"stock" binding:"omitempty,min=0"`
	MinStock   *int     `json:"min_stock" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID uint   `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description"`
}
