package repository

import (
	"context"
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
)

// DailySales is a single day's aggregated sales total
type DailySales struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error)
	Count(ctx context.Context) (int64, error)
	TotalSales(ctx context.Context) (float64, error)
	DailySales(ctx context.Context, days int) ([]DailySales, error)
}
