package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	domainRepo "github.com/rekar-dev/warehouse-api/internal/domain/repository"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Order("date DESC, id DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) TotalSales(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

// DailySales aggregates order totals per day over the last N days.
func (r *orderRepository) DailySales(ctx context.Context, days int) ([]domainRepo.DailySales, error) {
	since := time.Now().AddDate(0, 0, -days)

	var results []domainRepo.DailySales
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("DATE(date) AS date, COALESCE(SUM(total), 0) AS total").
		Where("date >= ?", since).
		Group("DATE(date)").
		Order("date ASC").
		Scan(&results).Error

	return results, err
}
