package service

import (
	"context"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/internal/domain/repository"
	"github.com/rekar-dev/warehouse-api/pkg/apperror"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
)

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput represents the supplier creation input
type CreateSupplierInput struct {
	Name    string
	Phone   string
	Address string
}

// CreateSupplier stores a new supplier with zero opening debt
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier returns a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uint) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplierInput represents the supplier update input
type UpdateSupplierInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// UpdateSupplier applies a partial update to a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uint, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// ListSuppliers returns suppliers matching the search with pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pg := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pg), nil
}

// SupplierDebt is a supplier with outstanding debt
type SupplierDebt struct {
	SupplierID uint    `json:"supplier_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Debt       float64 `json:"debt"`
}

// ListDebts returns suppliers that currently carry a debt balance
func (s *SupplierService) ListDebts(ctx context.Context, params *pagination.PaginationParams) ([]SupplierDebt, error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	suppliers, _, err := s.supplierRepo.List(ctx, params, "")
	if err != nil {
		return nil, err
	}

	debts := make([]SupplierDebt, 0)
	for _, supplier := range suppliers {
		if supplier.Debt > 0 {
			debts = append(debts, SupplierDebt{
				SupplierID: supplier.ID,
				Name:       supplier.Name,
				Phone:      supplier.Phone,
				Debt:       supplier.Debt,
			})
		}
	}

	return debts, nil
}
