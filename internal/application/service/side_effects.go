package service

import (
	"context"
	"log"
	"sync"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
)

// applySideEffects runs the post-commit steps of a purchase: one stock
// increment per line item and, when the purchase is underpaid, one debt
// increment for the supplier. Steps run concurrently and independently;
// a failed step is logged and skipped, the committed purchase stands.
func (s *BuyingService) applySideEffects(ctx context.Context, purchase *entity.Purchase) {
	var wg sync.WaitGroup

	for _, item := range purchase.Items {
		wg.Add(1)
		go func(item entity.PurchaseItem) {
			defer wg.Done()
			if err := s.productRepo.AtomicIncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				log.Printf("buying: purchase %d: failed to increment stock for product %d by %d: %v",
					purchase.ID, item.ProductID, item.Quantity, err)
			}
		}(item)
	}

	if purchase.RemainingAmount > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.supplierRepo.IncrementDebt(ctx, purchase.SupplierID, purchase.RemainingAmount); err != nil {
				log.Printf("buying: purchase %d: failed to increment debt for supplier %d by %.2f: %v",
					purchase.ID, purchase.SupplierID, purchase.RemainingAmount, err)
			}
		}()
	}

	wg.Wait()
}
