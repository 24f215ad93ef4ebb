package service

import (
	"context"
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/internal/domain/repository"
	"github.com/rekar-dev/warehouse-api/pkg/apperror"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// CreateOrderInput represents the order creation input
type CreateOrderInput struct {
	CustomerID *uint
	Date       time.Time
	Total      float64
	Notes      string
}

// CreateOrder validates and stores a new order
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.Total < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "total", Message: "Total cannot be negative"},
		})
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	order := &entity.Order{
		CustomerID: input.CustomerID,
		Date:       date,
		Total:      input.Total,
		Notes:      input.Notes,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder returns an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns orders with pagination
func (s *OrderService) ListOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pg := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pg), nil
}
