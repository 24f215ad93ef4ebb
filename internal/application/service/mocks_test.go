package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/internal/domain/repository"
	"github.com/rekar-dev/warehouse-api/pkg/pagination"
)

var errNotFound = errors.New("record not found")

// In-memory repositories with store-assigned increasing IDs, used to
// exercise the services without a database.

type memProductRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*entity.Product

	getErr       error
	incrementErr error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: make(map[uint]*entity.Product)}
}

func (r *memProductRepo) add(p entity.Product) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = &p
	return &p
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	product.ID = r.nextID
	clone := *product
	r.items[product.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Product
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.items[product.ID] = &clone
	return nil
}

func (r *memProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Product
	for id := uint(1); id <= r.nextID; id++ {
		p, ok := r.items[id]
		if !ok {
			continue
		}
		if params.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *params.CategoryID) {
			continue
		}
		if params.LowStock && !p.IsLowStock() {
			continue
		}
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *memProductRepo) CountLowStock(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, p := range r.items {
		if p.IsLowStock() {
			count++
		}
	}
	return count, nil
}

func (r *memProductRepo) AtomicIncrementStock(ctx context.Context, id uint, amount int) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return errNotFound
	}
	p.Stock += amount
	return nil
}

func (r *memProductRepo) stock(id uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id].Stock
}

type memSupplierRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*entity.Supplier

	getErr  error
	debtErr error
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{items: make(map[uint]*entity.Supplier)}
}

func (r *memSupplierRepo) add(s entity.Supplier) *entity.Supplier {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	r.items[s.ID] = &s
	return &s
}

func (r *memSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	supplier.ID = r.nextID
	clone := *supplier
	r.items[supplier.ID] = &clone
	return nil
}

func (r *memSupplierRepo) GetByID(ctx context.Context, id uint) (*entity.Supplier, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *memSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *supplier
	r.items[supplier.ID] = &clone
	return nil
}

func (r *memSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Supplier
	for id := uint(1); id <= r.nextID; id++ {
		if s, ok := r.items[id]; ok {
			result = append(result, *s)
		}
	}
	return result, int64(len(result)), nil
}

func (r *memSupplierRepo) IncrementDebt(ctx context.Context, id uint, amount float64) error {
	if r.debtErr != nil {
		return r.debtErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return errNotFound
	}
	s.Debt += amount
	return nil
}

func (r *memSupplierRepo) TotalDebt(ctx context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, s := range r.items {
		total += s.Debt
	}
	return total, nil
}

func (r *memSupplierRepo) debt(id uint) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id].Debt
}

type memPurchaseRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*entity.Purchase

	createErr error
}

func newMemPurchaseRepo() *memPurchaseRepo {
	return &memPurchaseRepo{items: make(map[uint]*entity.Purchase)}
}

func (r *memPurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	purchase.ID = r.nextID
	for i := range purchase.Items {
		purchase.Items[i].ID = uint(i + 1)
		purchase.Items[i].PurchaseID = purchase.ID
	}
	clone := *purchase
	r.items[purchase.ID] = &clone
	return nil
}

func (r *memPurchaseRepo) GetByID(ctx context.Context, id uint) (*entity.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memPurchaseRepo) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Purchase
	for id := uint(1); id <= r.nextID; id++ {
		p, ok := r.items[id]
		if !ok {
			continue
		}
		if params.SupplierID != nil && p.SupplierID != *params.SupplierID {
			continue
		}
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *memPurchaseRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{items: make(map[uint]*entity.Order)}
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	order.ID = r.nextID
	clone := *order
	r.items[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (r *memOrderRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Order
	for id := uint(1); id <= r.nextID; id++ {
		if o, ok := r.items[id]; ok {
			result = append(result, *o)
		}
	}
	return result, int64(len(result)), nil
}

func (r *memOrderRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memOrderRepo) TotalSales(ctx context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, o := range r.items {
		total += o.Total
	}
	return total, nil
}

func (r *memOrderRepo) DailySales(ctx context.Context, days int) ([]repository.DailySales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	since := time.Now().AddDate(0, 0, -days)
	byDay := make(map[string]float64)
	for _, o := range r.items {
		if o.Date.Before(since) {
			continue
		}
		byDay[o.Date.Format("2006-01-02")] += o.Total
	}
	result := make([]repository.DailySales, 0, len(byDay))
	for day, total := range byDay {
		date, _ := time.Parse("2006-01-02", day)
		result = append(result, repository.DailySales{Date: date, Total: total})
	}
	return result, nil
}

type memCustomerRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{items: make(map[uint]*entity.Customer)}
}

func (r *memCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	customer.ID = r.nextID
	clone := *customer
	r.items[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) GetByID(ctx context.Context, id uint) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *memCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *customer
	r.items[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Customer
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.items[id]; ok {
			result = append(result, *c)
		}
	}
	return result, int64(len(result)), nil
}

func (r *memCustomerRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memCategoryRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: make(map[uint]*entity.Category)}
}

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	category.ID = r.nextID
	clone := *category
	r.items[category.ID] = &clone
	return nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *memCategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *category
	r.items[category.ID] = &clone
	return nil
}

func (r *memCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Category
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.items[id]; ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: make(map[uint]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.items[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.items[user.ID] = &clone
	return nil
}

func (r *memUserRepo) List(ctx context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.User
	for id := uint(1); id <= r.nextID; id++ {
		if u, ok := r.items[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}
