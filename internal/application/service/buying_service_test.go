package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/internal/domain/enum"
	"github.com/rekar-dev/warehouse-api/pkg/apperror"
	"github.com/rekar-dev/warehouse-api/pkg/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type buyingFixture struct {
	service   *BuyingService
	products  *memProductRepo
	suppliers *memSupplierRepo
	purchases *memPurchaseRepo
}

func newBuyingFixture(t *testing.T) *buyingFixture {
	t.Helper()
	products := newMemProductRepo()
	suppliers := newMemSupplierRepo()
	purchases := newMemPurchaseRepo()
	svc := NewBuyingService(purchases, products, suppliers, receipt.NewTextRenderer("Test Store"))
	return &buyingFixture{
		service:   svc,
		products:  products,
		suppliers: suppliers,
		purchases: purchases,
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice float64
		discount  float64
		want      float64
	}{
		{name: "no discount", quantity: 2, unitPrice: 20, discount: 0, want: 40},
		{name: "with discount", quantity: 3, unitPrice: 10, discount: 5, want: 25},
		{name: "rounds to cents", quantity: 3, unitPrice: 0.1, discount: 0, want: 0.3},
		{name: "discount exceeds total", quantity: 1, unitPrice: 5, discount: 10, want: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LineTotal(tt.quantity, tt.unitPrice, tt.discount), 1e-9)
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	catA := uint(1)
	catB := uint(2)
	products := []entity.Product{
		{ID: 1, Name: "Widget", CategoryID: &catA},
		{ID: 2, Name: "Gadget", CategoryID: &catB},
		{ID: 3, Name: "Loose", CategoryID: nil},
	}

	all := FilterByCategory(products, 0)
	assert.Len(t, all, 3)

	onlyA := FilterByCategory(products, catA)
	require.Len(t, onlyA, 1)
	assert.Equal(t, "Widget", onlyA[0].Name)

	none := FilterByCategory(products, 99)
	assert.Empty(t, none)
}

func TestBuyingService_DraftStartsEmpty(t *testing.T) {
	f := newBuyingFixture(t)

	draft := f.service.Draft(7)
	assert.Equal(t, DraftStateEmpty, draft.State)
	assert.Empty(t, draft.Items)
	assert.Zero(t, draft.Total)
}

func TestBuyingService_AddItemAccumulatesTotal(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	gadget := f.products.add(entity.Product{Name: "Gadget"})

	draft, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID,
		Quantity:  3,
		UnitPrice: 10,
		Discount:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, DraftStateAccumulating, draft.State)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "Widget", draft.Items[0].ProductName)
	assert.InDelta(t, 25.0, draft.Items[0].LineTotal, 1e-9)
	assert.InDelta(t, 25.0, draft.Total, 1e-9)

	draft, err = f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: gadget.ID,
		Quantity:  2,
		UnitPrice: 20,
	})
	require.NoError(t, err)
	require.Len(t, draft.Items, 2)
	assert.InDelta(t, 65.0, draft.Total, 1e-9)
}

func TestBuyingService_AddItemValidation(t *testing.T) {
	f := newBuyingFixture(t)

	tests := []struct {
		name  string
		input AddItemInput
		field string
	}{
		{name: "missing product", input: AddItemInput{Quantity: 1, UnitPrice: 1}, field: "product_id"},
		{name: "zero quantity", input: AddItemInput{ProductID: 1, Quantity: 0, UnitPrice: 1}, field: "quantity"},
		{name: "negative quantity", input: AddItemInput{ProductID: 1, Quantity: -2, UnitPrice: 1}, field: "quantity"},
		{name: "negative price", input: AddItemInput{ProductID: 1, Quantity: 1, UnitPrice: -1}, field: "unit_price"},
		{name: "negative discount", input: AddItemInput{ProductID: 1, Quantity: 1, UnitPrice: 1, Discount: -1}, field: "discount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.AddItem(context.Background(), 1, &tt.input)
			require.Error(t, err)
			require.True(t, apperror.IsValidationError(err))
			appErr := apperror.GetAppError(err)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}
}

func TestBuyingService_AddItemUnknownProduct(t *testing.T) {
	f := newBuyingFixture(t)

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: 42,
		Quantity:  1,
		UnitPrice: 1,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestBuyingService_AddItemStoreFailure(t *testing.T) {
	f := newBuyingFixture(t)
	f.products.getErr = errors.New("connection reset")

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: 1,
		Quantity:  1,
		UnitPrice: 1,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.NotContains(t, appErr.Message, "connection reset")
}

func TestBuyingService_ItemIDsAreUnique(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})

	for i := 0; i < 5; i++ {
		_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
			ProductID: widget.ID,
			Quantity:  1,
			UnitPrice: 1,
		})
		require.NoError(t, err)
	}

	draft := f.service.Draft(1)
	seen := make(map[int64]bool)
	for _, item := range draft.Items {
		assert.False(t, seen[item.ID], "duplicate item ID %d", item.ID)
		seen[item.ID] = true
	}
}

func TestBuyingService_RemoveItem(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	gadget := f.products.add(entity.Product{Name: "Gadget"})

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 3, UnitPrice: 10, Discount: 5,
	})
	require.NoError(t, err)
	draft, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: gadget.ID, Quantity: 2, UnitPrice: 20,
	})
	require.NoError(t, err)
	require.Len(t, draft.Items, 2)

	draft = f.service.RemoveItem(1, draft.Items[0].ID)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "Gadget", draft.Items[0].ProductName)
	assert.InDelta(t, 40.0, draft.Total, 1e-9)
	assert.Equal(t, DraftStateAccumulating, draft.State)

	// Removing an unknown item is a no-op
	draft = f.service.RemoveItem(1, 999)
	assert.Len(t, draft.Items, 1)
	assert.InDelta(t, 40.0, draft.Total, 1e-9)

	// Draining the draft takes it back to empty
	draft = f.service.RemoveItem(1, draft.Items[0].ID)
	assert.Empty(t, draft.Items)
	assert.Zero(t, draft.Total)
	assert.Equal(t, DraftStateEmpty, draft.State)
}

func TestBuyingService_DraftsIsolatedPerUser(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 1, UnitPrice: 10,
	})
	require.NoError(t, err)

	other := f.service.Draft(2)
	assert.Equal(t, DraftStateEmpty, other.State)
	assert.Empty(t, other.Items)
}

func TestBuyingService_SubmitEmptyDraft(t *testing.T) {
	f := newBuyingFixture(t)
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme"})

	// An empty cart is reported before any other validation problem,
	// so even a missing supplier comes second.
	_, err := f.service.Submit(context.Background(), 1, &SubmitInput{})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.True(t, apperror.IsValidationError(err))
	require.NotEmpty(t, appErr.Errors)
	assert.Equal(t, "items", appErr.Errors[0].Field)

	_, err = f.service.Submit(context.Background(), 1, &SubmitInput{SupplierID: supplier.ID})
	require.Error(t, err)
	appErr = apperror.GetAppError(err)
	require.NotEmpty(t, appErr.Errors)
	assert.Equal(t, "items", appErr.Errors[0].Field)
}

func TestBuyingService_SubmitMissingSupplier(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 1, UnitPrice: 10,
	})
	require.NoError(t, err)

	_, err = f.service.Submit(context.Background(), 1, &SubmitInput{})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.True(t, apperror.IsValidationError(err))
	require.NotEmpty(t, appErr.Errors)
	assert.Equal(t, "supplier_id", appErr.Errors[0].Field)

	// The draft is untouched and usable afterwards
	draft := f.service.Draft(1)
	assert.Equal(t, DraftStateAccumulating, draft.State)
	assert.Len(t, draft.Items, 1)
}

func TestBuyingService_SubmitUnknownSupplier(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 1, UnitPrice: 10,
	})
	require.NoError(t, err)

	_, err = f.service.Submit(context.Background(), 1, &SubmitInput{SupplierID: 42})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)

	draft := f.service.Draft(1)
	assert.Equal(t, DraftStateAccumulating, draft.State)
	assert.Len(t, draft.Items, 1)
}

func TestBuyingService_SubmitNegativePaidAmount(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme"})
	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 1, UnitPrice: 10,
	})
	require.NoError(t, err)

	_, err = f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID: supplier.ID,
		PaidAmount: -1,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.True(t, apperror.IsValidationError(err))
	require.NotEmpty(t, appErr.Errors)
	assert.Equal(t, "paid_amount", appErr.Errors[0].Field)
}

func TestBuyingService_SubmitUnknownPaymentType(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme"})
	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 1, UnitPrice: 10,
	})
	require.NoError(t, err)

	_, err = f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID:  supplier.ID,
		PaymentType: enum.PaymentType("barter"),
	})
	require.Error(t, err)
	require.True(t, apperror.IsValidationError(err))

	draft := f.service.Draft(1)
	assert.Equal(t, DraftStateAccumulating, draft.State)
}

func TestBuyingService_SubmitPartialPayment(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget", Stock: 10})
	gadget := f.products.add(entity.Product{Name: "Gadget", Stock: 0})
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme", Debt: 100})

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 3, UnitPrice: 10, Discount: 5,
	})
	require.NoError(t, err)
	_, err = f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: gadget.ID, Quantity: 2, UnitPrice: 20,
	})
	require.NoError(t, err)

	result, err := f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID: supplier.ID,
		PaidAmount: 50,
		Notes:      "first delivery",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Purchase)

	p := result.Purchase
	assert.NotZero(t, p.ID)
	assert.True(t, strings.HasPrefix(p.ReferenceNo, "PUR-"))
	assert.Equal(t, supplier.ID, p.SupplierID)
	assert.InDelta(t, 65.0, p.Total, 1e-9)
	assert.InDelta(t, 50.0, p.PaidAmount, 1e-9)
	assert.InDelta(t, 15.0, p.RemainingAmount, 1e-9)
	assert.Equal(t, enum.PaymentStatusPartial, p.PaymentStatus)
	assert.Equal(t, enum.PaymentTypeCash, p.PaymentType)
	require.Len(t, p.Items, 2)
	assert.InDelta(t, 25.0, p.Items[0].LineTotal, 1e-9)
	assert.InDelta(t, 40.0, p.Items[1].LineTotal, 1e-9)

	// Side effects: stock incremented per item, debt grew by the
	// remaining amount.
	assert.Equal(t, 13, f.products.stock(widget.ID))
	assert.Equal(t, 2, f.products.stock(gadget.ID))
	assert.InDelta(t, 115.0, f.suppliers.debt(supplier.ID), 1e-9)

	// Receipt carries the essentials
	assert.Contains(t, result.Receipt, "Test Store")
	assert.Contains(t, result.Receipt, p.ReferenceNo)
	assert.Contains(t, result.Receipt, "Acme")
	assert.Contains(t, result.Receipt, "Widget")
	assert.Contains(t, result.Receipt, "65.00")
	assert.Contains(t, result.Receipt, "REMAINING")

	// Draft is reset after a successful checkout
	draft := f.service.Draft(1)
	assert.Equal(t, DraftStateEmpty, draft.State)
	assert.Empty(t, draft.Items)

	// Round-trip: the stored purchase's items sum to its total
	stored, err := f.purchases.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	var sum float64
	for _, item := range stored.Items {
		sum += item.LineTotal
	}
	assert.InDelta(t, stored.Total, sum, 1e-9)
}

func TestBuyingService_SubmitFullPayment(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme", Debt: 100})

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 2, UnitPrice: 25,
	})
	require.NoError(t, err)

	result, err := f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID:  supplier.ID,
		PaidAmount:  50,
		PaymentType: enum.PaymentTypeTransfer,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, result.Purchase.PaymentStatus)
	assert.Zero(t, result.Purchase.RemainingAmount)
	assert.NotContains(t, result.Receipt, "REMAINING")
	// Debt never changes when the purchase is fully paid
	assert.InDelta(t, 100.0, f.suppliers.debt(supplier.ID), 1e-9)
}

func TestBuyingService_SubmitOverpaymentClampsRemaining(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget"})
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme"})

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 1, UnitPrice: 10,
	})
	require.NoError(t, err)

	result, err := f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID: supplier.ID,
		PaidAmount: 100,
	})
	require.NoError(t, err)

	assert.Zero(t, result.Purchase.RemainingAmount)
	assert.Equal(t, enum.PaymentStatusPaid, result.Purchase.PaymentStatus)
	assert.Zero(t, f.suppliers.debt(supplier.ID))
}

func TestBuyingService_SubmitCommitFailureKeepsDraft(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget", Stock: 5})
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme"})
	f.purchases.createErr = errors.New("deadlock detected")

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 2, UnitPrice: 10,
	})
	require.NoError(t, err)

	_, err = f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID: supplier.ID,
		PaidAmount: 20,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)

	// Nothing happened: no stock movement, no debt, draft intact.
	assert.Equal(t, 5, f.products.stock(widget.ID))
	assert.Zero(t, f.suppliers.debt(supplier.ID))

	draft := f.service.Draft(1)
	assert.Equal(t, DraftStateAccumulating, draft.State)
	require.Len(t, draft.Items, 1)
	assert.InDelta(t, 20.0, draft.Total, 1e-9)

	// The same draft submits cleanly once the store recovers
	f.purchases.createErr = nil
	result, err := f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID: supplier.ID,
		PaidAmount: 20,
	})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, result.Purchase.Total, 1e-9)
}

func TestBuyingService_SideEffectFailureDoesNotFailCheckout(t *testing.T) {
	f := newBuyingFixture(t)
	widget := f.products.add(entity.Product{Name: "Widget", Stock: 5})
	supplier := f.suppliers.add(entity.Supplier{Name: "Acme"})
	f.products.incrementErr = errors.New("lock timeout")

	_, err := f.service.AddItem(context.Background(), 1, &AddItemInput{
		ProductID: widget.ID, Quantity: 2, UnitPrice: 10,
	})
	require.NoError(t, err)

	result, err := f.service.Submit(context.Background(), 1, &SubmitInput{
		SupplierID: supplier.ID,
		PaidAmount: 20,
	})
	require.NoError(t, err)
	assert.NotZero(t, result.Purchase.ID)

	// The purchase stands even though the stock update failed
	stored, err := f.purchases.GetByID(context.Background(), result.Purchase.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 5, f.products.stock(widget.ID))
}
