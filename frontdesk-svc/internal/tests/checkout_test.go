package tests

import (
	"context"
	"testing"

	"tableside/frontdesk-svc/internal/domain"
	"tableside/frontdesk-svc/internal/mocks"
	"tableside/frontdesk-svc/internal/service"
	"tableside/frontdesk-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWithOneDish(store *service.CartStore, session string) {
	store.Add(session, service.CartLine{
		Item:      domain.ItemRef{Type: domain.ItemDish, ID: 4},
		Name:      "宫保鸡丁",
		UnitPrice: 28,
		Quantity:  2,
	})
}

func TestCheckout_EmptyCart(t *testing.T) {
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	svc := service.NewCheckoutService(customers, orders, service.NewCartStore(), nil)

	_, err := svc.Checkout(context.Background(), service.CheckoutRequest{Session: "s1", CustomerID: 5, TableID: 3})

	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestCheckout_MissingTable(t *testing.T) {
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	carts := service.NewCartStore()
	cartWithOneDish(carts, "s1")

	svc := service.NewCheckoutService(customers, orders, carts, nil)
	_, err := svc.Checkout(context.Background(), service.CheckoutRequest{Session: "s1", CustomerID: 5})

	assert.ErrorIs(t, err, service.ErrTableRequired)
}

func TestCheckout_NewCustomerNeedsNameAndPhone(t *testing.T) {
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	carts := service.NewCartStore()
	cartWithOneDish(carts, "s1")

	svc := service.NewCheckoutService(customers, orders, carts, nil)
	_, err := svc.Checkout(context.Background(), service.CheckoutRequest{Session: "s1", TableID: 3, CName: "Wang"})

	assert.ErrorIs(t, err, service.ErrCustomerRequired)
}

func TestCheckout_ExistingCustomer(t *testing.T) {
	ctx := context.Background()
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	publisher := mocks.NewOrderPublisher(t)
	carts := service.NewCartStore()
	cartWithOneDish(carts, "s1")

	created := &domain.OrderInfo{OID: 12, TotalPrice: 56, PayStatus: domain.PayStatusUnpaid}
	orders.On("Create", ctx, mock.MatchedBy(func(draft domain.OrderDraft) bool {
		return draft.CustomerID == 5 &&
			draft.TableID == 3 &&
			draft.PayStatus == domain.PayStatusUnpaid &&
			draft.TotalPrice == 56 &&
			len(draft.Details) == 1 &&
			draft.Details[0].Item == domain.ItemRef{Type: domain.ItemDish, ID: 4} &&
			draft.Details[0].SubTotal == 56
	})).Return(created, nil).Once()
	publisher.On("PublishOrder", ctx, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == "order_placed" && event.OrderID == 12 && len(event.Items) == 1
	})).Return(nil).Once()

	svc := service.NewCheckoutService(customers, orders, carts, publisher)
	order, err := svc.Checkout(ctx, service.CheckoutRequest{Session: "s1", CustomerID: 5, TableID: 3})

	require.NoError(t, err)
	assert.Equal(t, 12, order.OID)
	assert.Empty(t, carts.Get("s1").Lines, "cart cleared after a successful order")
	customers.AssertNotCalled(t, "Create")
}

func TestCheckout_CreatesMissingCustomer(t *testing.T) {
	ctx := context.Background()
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	carts := service.NewCartStore()
	cartWithOneDish(carts, "s1")

	customers.On("Create", ctx, domain.CustomerFields{CName: "Wang", CPhone: "13800000000"}).
		Return(&domain.Customer{CID: 9, CName: "Wang", CPhone: "13800000000"}, nil).Once()
	orders.On("Create", ctx, mock.MatchedBy(func(draft domain.OrderDraft) bool {
		return draft.CustomerID == 9
	})).Return(&domain.OrderInfo{OID: 13}, nil).Once()

	svc := service.NewCheckoutService(customers, orders, carts, nil)
	order, err := svc.Checkout(ctx, service.CheckoutRequest{
		Session: "s1", CName: "Wang", CPhone: "13800000000", TableID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 13, order.OID)
}

// A duplicate phone number stops the flow before any order call goes out.
func TestCheckout_CustomerConflictStops(t *testing.T) {
	ctx := context.Background()
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	carts := service.NewCartStore()
	cartWithOneDish(carts, "s1")

	conflict := &storage.ConflictError{Resource: "customer", Reason: "duplicate phone number"}
	customers.On("Create", ctx, mock.Anything).Return(nil, conflict).Once()

	svc := service.NewCheckoutService(customers, orders, carts, nil)
	_, err := svc.Checkout(ctx, service.CheckoutRequest{
		Session: "s1", CName: "Wang", CPhone: "13800000000", TableID: 3,
	})

	var got *storage.ConflictError
	require.ErrorAs(t, err, &got)
	orders.AssertNotCalled(t, "Create")
	assert.NotEmpty(t, carts.Get("s1").Lines, "cart survives the failed checkout")
}

// When the order call fails after the customer was created, the customer
// stays created and the cart stays intact. Nothing is rolled back.
func TestCheckout_OrderFailureKeepsCustomerAndCart(t *testing.T) {
	ctx := context.Background()
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	carts := service.NewCartStore()
	cartWithOneDish(carts, "s1")

	customers.On("Create", ctx, mock.Anything).
		Return(&domain.Customer{CID: 9}, nil).Once()
	orders.On("Create", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	svc := service.NewCheckoutService(customers, orders, carts, nil)
	_, err := svc.Checkout(ctx, service.CheckoutRequest{
		Session: "s1", CName: "Wang", CPhone: "13800000000", TableID: 3,
	})

	require.Error(t, err)
	customers.AssertNotCalled(t, "Remove")
	assert.NotEmpty(t, carts.Get("s1").Lines)
}

// A broken broker must not fail the checkout. The order already exists.
func TestCheckout_PublishFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	publisher := mocks.NewOrderPublisher(t)
	carts := service.NewCartStore()
	cartWithOneDish(carts, "s1")

	orders.On("Create", ctx, mock.Anything).Return(&domain.OrderInfo{OID: 12}, nil).Once()
	publisher.On("PublishOrder", ctx, mock.Anything).Return(assert.AnError).Once()

	svc := service.NewCheckoutService(customers, orders, carts, publisher)
	order, err := svc.Checkout(ctx, service.CheckoutRequest{Session: "s1", CustomerID: 5, TableID: 3})

	require.NoError(t, err)
	assert.Equal(t, 12, order.OID)
	assert.Empty(t, carts.Get("s1").Lines)
}
