package repository

import (
	"context"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
)

// SupplierRepository defines the interface for supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uint) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)

	// IncrementDebt adds amount to the supplier's outstanding debt in a
	// single UPDATE so concurrent increments never lose writes.
	IncrementDebt(ctx context.Context, id uint, amount float64) error

	// TotalDebt returns the sum of all supplier debts.
	TotalDebt(ctx context.Context) (float64, error)
}
