package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tableside/frontdesk-svc/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutRequest is what the checkout page submits: either an existing
// customer or name+phone for a new one, plus the chosen table.
type CheckoutRequest struct {
	Session    string `json:"-"`
	CustomerID int    `json:"customerId"`
	CName      string `json:"cName"`
	CPhone     string `json:"cPhone"`
	TableID    int    `json:"tableId"`
}

type CheckoutService struct {
	customers CustomerAccessor
	orders    OrderAccessor
	carts     *CartStore
	publisher OrderPublisher
	now       func() time.Time
}

func NewCheckoutService(customers CustomerAccessor, orders OrderAccessor, carts *CartStore, publisher OrderPublisher) *CheckoutService {
	return &CheckoutService{
		customers: customers,
		orders:    orders,
		carts:     carts,
		publisher: publisher,
		now:       time.Now,
	}
}

// Checkout turns the session's cart into an order. A missing customer is
// created first; when that succeeds but the order call fails, the customer
// stays created. There is no compensating delete.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*domain.OrderInfo, error) {
	cart := s.carts.Get(req.Session)
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if req.TableID <= 0 {
		return nil, ErrTableRequired
	}

	customerID := req.CustomerID
	if customerID <= 0 {
		if req.CName == "" || req.CPhone == "" {
			return nil, ErrCustomerRequired
		}
		customer, err := s.customers.Create(ctx, domain.CustomerFields{CName: req.CName, CPhone: req.CPhone})
		if err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
		customerID = customer.CID
	}

	draft := domain.OrderDraft{
		ODateTime:  domain.FormatOrderTime(s.now()),
		PayStatus:  domain.PayStatusUnpaid,
		CustomerID: customerID,
		TableID:    req.TableID,
		Details:    make([]domain.DetailDraft, 0, len(cart.Lines)),
	}
	for _, line := range cart.Lines {
		subTotal := line.UnitPrice * float64(line.Quantity)
		draft.Details = append(draft.Details, domain.DetailDraft{
			Item:     line.Item,
			Quantity: line.Quantity,
			SubTotal: subTotal,
		})
		draft.TotalPrice += subTotal
	}

	order, err := s.orders.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:       "order_placed",
			OrderID:    order.OID,
			TableID:    req.TableID,
			TotalPrice: order.TotalPrice,
			Items:      make([]domain.OrderEventItem, 0, len(cart.Lines)),
			Timestamp:  s.now(),
		}
		for _, line := range cart.Lines {
			event.Items = append(event.Items, domain.OrderEventItem{
				ItemType: line.Item.Type,
				ItemID:   line.Item.ID,
				Quantity: line.Quantity,
			})
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("[frontdesk] publish order %d event: %v", order.OID, err)
		}
	}

	s.carts.Clear(req.Session)
	return order, nil
}
