package mocks

import (
	"context"

	"tableside/frontdesk-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuCache is a testify mock for service.MenuCache.
type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) Get(ctx context.Context) (*domain.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *MenuCache) Set(ctx context.Context, menu *domain.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MenuCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// OrderPublisher is a testify mock for service.OrderPublisher.
type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrder(ctx context.Context, msg domain.OrderEvent) error {
	return m.Called(ctx, msg).Error(0)
}

// QRGenerator is a testify mock for service.QRGenerator.
type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
