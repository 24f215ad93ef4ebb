package service

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/internal/domain/enum"
	"github.com/rekar-dev/warehouse-api/internal/domain/repository"
	"github.com/rekar-dev/warehouse-api/pkg/apperror"
	"github.com/rekar-dev/warehouse-api/pkg/receipt"
	"github.com/rekar-dev/warehouse-api/pkg/utils"
)

// DraftState represents the lifecycle state of a purchase draft
type DraftState string

const (
	DraftStateEmpty        DraftState = "empty"
	DraftStateAccumulating DraftState = "accumulating"
	DraftStateSubmitting   DraftState = "submitting"
)

// DraftItem is a line item in an uncommitted purchase draft. IDs are
// transient and only unique within a single draft.
type DraftItem struct {
	ID          int64   `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	LineTotal   float64 `json:"line_total"`
}

// Draft is a snapshot of a user's in-progress purchase
type Draft struct {
	State DraftState  `json:"state"`
	Items []DraftItem `json:"items"`
	Total float64     `json:"total"`
}

// draft is the mutable per-user state guarded by the service mutex
type draft struct {
	state DraftState
	items []DraftItem
	total float64
}

// BuyingService drives the purchase workflow: item accumulation in a
// per-user draft, checkout validation, the purchase commit and its
// post-commit side effects.
type BuyingService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	renderer     receipt.Renderer

	mu     sync.Mutex
	drafts map[uint]*draft
}

// NewBuyingService creates a new buying service
func NewBuyingService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	renderer receipt.Renderer,
) *BuyingService {
	return &BuyingService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		renderer:     renderer,
		drafts:       make(map[uint]*draft),
	}
}

// LineTotal computes a line item total: quantity * unitPrice - discount,
// rounded to two decimal places.
func LineTotal(quantity int, unitPrice, discount float64) float64 {
	return round2(float64(quantity)*unitPrice - discount)
}

// FilterByCategory returns the products belonging to the given category.
// A zero category ID returns all products.
func FilterByCategory(products []entity.Product, categoryID uint) []entity.Product {
	if categoryID == 0 {
		return products
	}
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Draft returns a snapshot of the user's current draft
func (s *BuyingService) Draft(userID uint) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(userID)
}

// AddItemInput represents the add item input
type AddItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
	Discount  float64
}

// AddItem validates the input, resolves the product and appends a line
// item to the user's draft.
func (s *BuyingService) AddItem(ctx context.Context, userID uint, input *AddItemInput) (*Draft, error) {
	var fieldErrors []apperror.FieldError
	if input.ProductID == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "product_id", Message: "Product is required"})
	}
	if input.Quantity <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity must be greater than zero"})
	}
	if input.UnitPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "unit_price", Message: "Unit price cannot be negative"})
	}
	if input.Discount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "Discount cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		log.Printf("buying: failed to fetch product %d: %v", input.ProductID, err)
		return nil, apperror.NewStorageError("fetch product")
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	item := DraftItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		Discount:    input.Discount,
		LineTotal:   LineTotal(input.Quantity, input.UnitPrice, input.Discount),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.drafts[userID]
	if d == nil {
		d = &draft{state: DraftStateEmpty}
		s.drafts[userID] = d
	}
	if d.state == DraftStateSubmitting {
		return nil, apperror.NewConflictError("Checkout already in progress")
	}

	item.ID = s.nextItemIDLocked(d)
	d.items = append(d.items, item)
	d.state = DraftStateAccumulating
	d.recalculate()

	return s.snapshotLocked(userID), nil
}

// RemoveItem removes a line item from the user's draft. Removing an
// unknown item is a no-op.
func (s *BuyingService) RemoveItem(userID uint, itemID int64) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.drafts[userID]
	if d == nil || d.state == DraftStateSubmitting {
		return s.snapshotLocked(userID)
	}

	found := false
	for i, item := range d.items {
		if item.ID == itemID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		log.Printf("buying: remove ignored, item %d not in draft for user %d", itemID, userID)
		return s.snapshotLocked(userID)
	}

	d.recalculate()
	if len(d.items) == 0 {
		d.state = DraftStateEmpty
	}

	return s.snapshotLocked(userID)
}

// SubmitInput represents the checkout input
type SubmitInput struct {
	SupplierID  uint
	Date        time.Time
	PaymentType enum.PaymentType
	PaidAmount  float64
	Notes       string
	CreatedByID *uint
}

// CheckoutResult is the outcome of a successful checkout
type CheckoutResult struct {
	Purchase *entity.Purchase `json:"purchase"`
	Receipt  string           `json:"receipt"`
}

// Submit validates the draft, commits the purchase, applies post-commit
// side effects and resets the draft. Items are checked before the
// supplier so an empty cart is always the first error reported.
func (s *BuyingService) Submit(ctx context.Context, userID uint, input *SubmitInput) (*CheckoutResult, error) {
	s.mu.Lock()
	d := s.drafts[userID]
	if d == nil || len(d.items) == 0 {
		s.mu.Unlock()
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one item is required"},
		})
	}
	if input.SupplierID == 0 {
		s.mu.Unlock()
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "supplier_id", Message: "Supplier is required"},
		})
	}
	if input.PaidAmount < 0 {
		s.mu.Unlock()
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "paid_amount", Message: "Paid amount cannot be negative"},
		})
	}
	if d.state == DraftStateSubmitting {
		s.mu.Unlock()
		return nil, apperror.NewConflictError("Checkout already in progress")
	}
	d.state = DraftStateSubmitting
	items := make([]DraftItem, len(d.items))
	copy(items, d.items)
	s.mu.Unlock()

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		log.Printf("buying: failed to fetch supplier %d: %v", input.SupplierID, err)
		s.restoreDraft(userID)
		return nil, apperror.NewStorageError("fetch supplier")
	}
	if supplier == nil {
		s.restoreDraft(userID)
		return nil, apperror.NewNotFoundError("Supplier")
	}

	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = enum.PaymentTypeCash
	}
	if !paymentType.IsValid() {
		s.restoreDraft(userID)
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_type", Message: "Unknown payment type"},
		})
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	var total float64
	purchaseItems := make([]entity.PurchaseItem, 0, len(items))
	for _, item := range items {
		total += item.LineTotal
		purchaseItems = append(purchaseItems, entity.PurchaseItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			LineTotal:   item.LineTotal,
		})
	}
	total = round2(total)

	remaining := round2(total - input.PaidAmount)
	if remaining < 0 {
		remaining = 0
	}

	purchase := &entity.Purchase{
		ReferenceNo:     utils.GenerateReferenceNo("PUR"),
		SupplierID:      supplier.ID,
		Date:            date,
		Total:           total,
		PaymentType:     paymentType,
		PaidAmount:      input.PaidAmount,
		RemainingAmount: remaining,
		PaymentStatus:   enum.PaymentStatusFor(total, input.PaidAmount),
		Notes:           input.Notes,
		CreatedByID:     input.CreatedByID,
		Items:           purchaseItems,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		log.Printf("buying: failed to commit purchase for user %d: %v", userID, err)
		s.restoreDraft(userID)
		return nil, apperror.NewStorageError("create purchase")
	}

	// The purchase is committed; stock and debt updates are best effort
	// from here on and never roll it back.
	s.applySideEffects(ctx, purchase)

	receiptText := s.renderer.Render(&receipt.Data{
		ReferenceNo:  purchase.ReferenceNo,
		Date:         purchase.Date,
		SupplierName: supplier.Name,
		Items:        receiptLines(purchase.Items),
		Total:        purchase.Total,
		PaidAmount:   purchase.PaidAmount,
		Remaining:    purchase.RemainingAmount,
		PaymentType:  purchase.PaymentType.String(),
		Notes:        purchase.Notes,
	})

	s.mu.Lock()
	delete(s.drafts, userID)
	s.mu.Unlock()

	return &CheckoutResult{
		Purchase: purchase,
		Receipt:  receiptText,
	}, nil
}

// restoreDraft puts a draft back into the accumulating state after a
// failed checkout so no items are lost.
func (s *BuyingService) restoreDraft(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d := s.drafts[userID]; d != nil && d.state == DraftStateSubmitting {
		d.state = DraftStateAccumulating
	}
}

// nextItemIDLocked assigns a millisecond-clock based transient ID,
// bumping on collision with existing items. Caller must hold s.mu.
func (s *BuyingService) nextItemIDLocked(d *draft) int64 {
	id := time.Now().UnixMilli()
	for {
		taken := false
		for _, item := range d.items {
			if item.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}

// snapshotLocked copies the draft for safe return. Caller must hold s.mu.
func (s *BuyingService) snapshotLocked(userID uint) *Draft {
	d := s.drafts[userID]
	if d == nil {
		return &Draft{State: DraftStateEmpty, Items: []DraftItem{}}
	}
	items := make([]DraftItem, len(d.items))
	copy(items, d.items)
	return &Draft{
		State: d.state,
		Items: items,
		Total: d.total,
	}
}

func (d *draft) recalculate() {
	var total float64
	for _, item := range d.items {
		total += item.LineTotal
	}
	d.total = round2(total)
}

func receiptLines(items []entity.PurchaseItem) []receipt.Line {
	lines := make([]receipt.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, receipt.Line{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			LineTotal:   item.LineTotal,
		})
	}
	return lines
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
