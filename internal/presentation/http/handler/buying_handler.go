package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rekar-dev/warehouse-api/internal/application/service"
	"github.com/rekar-dev/warehouse-api/internal/domain/enum"
	"github.com/rekar-dev/warehouse-api/internal/presentation/http/dto/request"
	"github.com/rekar-dev/warehouse-api/internal/presentation/http/dto/response"
)

// BuyingHandler handles purchase draft HTTP requests
type BuyingHandler struct {
	buyingService *service.BuyingService
}

// NewBuyingHandler creates a new buying handler
func NewBuyingHandler(buyingService *service.BuyingService) *BuyingHandler {
	return &BuyingHandler{buyingService: buyingService}
}

// GetDraft returns the current user's purchase draft
func (h *BuyingHandler) GetDraft(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Draft retrieved successfully", h.buyingService.Draft(userID))
}

// AddItem adds a line item to the current user's draft
func (h *BuyingHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.buyingService.AddItem(c.Request.Context(), userID, &service.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Discount:  req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to draft", draft)
}

// RemoveItem removes a line item from the current user's draft
func (h *BuyingHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, ok := ParseInt64Param(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	response.OK(c, "Item removed from draft", h.buyingService.RemoveItem(userID, itemID))
}

// LineTotal previews a line total without touching the draft
func (h *BuyingHandler) LineTotal(c *gin.Context) {
	var req request.LineTotalRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	response.OK(c, "Line total computed", gin.H{
		"line_total": service.LineTotal(req.Quantity, req.UnitPrice, req.Discount),
	})
}

// Checkout submits the current user's draft as a purchase
func (h *BuyingHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.SubmitInput{
		SupplierID:  req.SupplierID,
		PaymentType: enum.PaymentType(req.PaymentType),
		PaidAmount:  req.PaidAmount,
		Notes:       req.Notes,
		CreatedByID: &userID,
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date format")
			return
		}
		input.Date = date
	}

	result, err := h.buyingService.Submit(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase committed successfully", result)
}
