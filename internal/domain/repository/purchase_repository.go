package repository

import (
	"context"
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
)

// PurchaseFilterParams holds filter parameters for purchase queries
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	SupplierID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
}

// PurchaseRepository defines the interface for purchase data access
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uint) (*entity.Purchase, error)
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
	Count(ctx context.Context) (int64, error)
}
