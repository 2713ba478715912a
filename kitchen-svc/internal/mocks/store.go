package mocks

import (
	"tableside/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// StoreInterface is a testify mock for service.StoreInterface.
type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) AddTicket(msg domain.OrderEvent) error {
	return m.Called(msg).Error(0)
}

func (m *StoreInterface) Pending() []domain.Ticket {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Ticket)
}

func (m *StoreInterface) MarkReady(orderID int) error {
	return m.Called(orderID).Error(0)
}

func (m *StoreInterface) Popular(limit int) ([]domain.PopularItem, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularItem), args.Error(1)
}
