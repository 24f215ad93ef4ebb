package service

import (
	"context"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/internal/domain/repository"
	"github.com/rekar-dev/warehouse-api/pkg/apperror"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
	"github.com/rekar-dev/warehouse-api/pkg/receipt"
)

// PurchaseService handles queries over committed purchases
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	renderer     receipt.Renderer
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, renderer receipt.Renderer) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		renderer:     renderer,
	}
}

// GetPurchase returns a purchase by ID with its items and supplier
func (s *PurchaseService) GetPurchase(ctx context.Context, id uint) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases returns purchases matching the filter with pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pg := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pg), nil
}

// RenderReceipt re-renders the receipt for a committed purchase
func (s *PurchaseService) RenderReceipt(ctx context.Context, id uint) (string, error) {
	purchase, err := s.GetPurchase(ctx, id)
	if err != nil {
		return "", err
	}

	supplierName := ""
	if purchase.Supplier != nil {
		supplierName = purchase.Supplier.Name
	}

	return s.renderer.Render(&receipt.Data{
		ReferenceNo:  purchase.ReferenceNo,
		Date:         purchase.Date,
		SupplierName: supplierName,
		Items:        receiptLines(purchase.Items),
		Total:        purchase.Total,
		PaidAmount:   purchase.PaidAmount,
		Remaining:    purchase.RemainingAmount,
		PaymentType:  purchase.PaymentType.String(),
		Notes:        purchase.Notes,
	}), nil
}
