package service

import (
	"context"
	"log"

	"github.com/rekar-dev/warehouse-api/internal/domain/repository"
)

// DashboardService aggregates the dashboard statistics
type DashboardService struct {
	orderRepo    repository.OrderRepository
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// DashboardStats holds the key figures shown on the dashboard
type DashboardStats struct {
	TotalSales      float64                 `json:"total_sales"`
	TotalOrders     int64                   `json:"total_orders"`
	ActiveCustomers int64                   `json:"active_customers"`
	LowStockItems   int64                   `json:"low_stock_items"`
	TotalPurchases  int64                   `json:"total_purchases"`
	OutstandingDebt float64                 `json:"outstanding_debt"`
	SalesLast7Days  []repository.DailySales `json:"sales_last_7_days"`
}

// GetStats computes the dashboard statistics. A failed aggregate is
// logged and reported as zero rather than failing the whole dashboard.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	totalSales, err := s.orderRepo.TotalSales(ctx)
	if err != nil {
		log.Printf("dashboard: failed to compute total sales: %v", err)
	} else {
		stats.TotalSales = totalSales
	}

	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		log.Printf("dashboard: failed to count orders: %v", err)
	} else {
		stats.TotalOrders = totalOrders
	}

	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		log.Printf("dashboard: failed to count customers: %v", err)
	} else {
		stats.ActiveCustomers = customers
	}

	lowStock, err := s.productRepo.CountLowStock(ctx)
	if err != nil {
		log.Printf("dashboard: failed to count low stock products: %v", err)
	} else {
		stats.LowStockItems = lowStock
	}

	purchases, err := s.purchaseRepo.Count(ctx)
	if err != nil {
		log.Printf("dashboard: failed to count purchases: %v", err)
	} else {
		stats.TotalPurchases = purchases
	}

	debt, err := s.supplierRepo.TotalDebt(ctx)
	if err != nil {
		log.Printf("dashboard: failed to compute outstanding debt: %v", err)
	} else {
		stats.OutstandingDebt = debt
	}

	series, err := s.orderRepo.DailySales(ctx, 7)
	if err != nil {
		log.Printf("dashboard: failed to compute sales series: %v", err)
		series = []repository.DailySales{}
	}
	stats.SalesLast7Days = series

	return stats, nil
}
