package mocks

import (
	"context"

	"tableside/frontdesk-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// DishAccessor is a testify mock for service.DishAccessor.
type DishAccessor struct {
	mock.Mock
}

func NewDishAccessor(t testingT) *DishAccessor {
	m := &DishAccessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DishAccessor) FetchAll(ctx context.Context) ([]domain.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dish), args.Error(1)
}

func (m *DishAccessor) FetchByID(ctx context.Context, dNo int) (*domain.Dish, error) {
	args := m.Called(ctx, dNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *DishAccessor) Create(ctx context.Context, fields domain.DishFields) (*domain.Dish, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *DishAccessor) Update(ctx context.Context, dNo int, fields domain.DishFields) (*domain.Dish, error) {
	args := m.Called(ctx, dNo, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *DishAccessor) Remove(ctx context.Context, dNo int) error {
	return m.Called(ctx, dNo).Error(0)
}

// SetMealAccessor is a testify mock for service.SetMealAccessor.
type SetMealAccessor struct {
	mock.Mock
}

func NewSetMealAccessor(t testingT) *SetMealAccessor {
	m := &SetMealAccessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SetMealAccessor) FetchAll(ctx context.Context) ([]domain.SetMeal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SetMeal), args.Error(1)
}

func (m *SetMealAccessor) FetchByID(ctx context.Context, sNo int) (*domain.SetMeal, error) {
	args := m.Called(ctx, sNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SetMeal), args.Error(1)
}

func (m *SetMealAccessor) Create(ctx context.Context, fields domain.SetMealFields) (*domain.SetMeal, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SetMeal), args.Error(1)
}

func (m *SetMealAccessor) Update(ctx context.Context, sNo int, fields domain.SetMealFields) (*domain.SetMeal, error) {
	args := m.Called(ctx, sNo, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SetMeal), args.Error(1)
}

func (m *SetMealAccessor) Remove(ctx context.Context, sNo int) error {
	return m.Called(ctx, sNo).Error(0)
}

// TableAccessor is a testify mock for service.TableAccessor.
type TableAccessor struct {
	mock.Mock
}

func NewTableAccessor(t testingT) *TableAccessor {
	m := &TableAccessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableAccessor) FetchAll(ctx context.Context) ([]domain.TableInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TableInfo), args.Error(1)
}

func (m *TableAccessor) FetchByID(ctx context.Context, tID int) (*domain.TableInfo, error) {
	args := m.Called(ctx, tID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableInfo), args.Error(1)
}

func (m *TableAccessor) Create(ctx context.Context, fields domain.TableFields) (*domain.TableInfo, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableInfo), args.Error(1)
}

func (m *TableAccessor) Update(ctx context.Context, tID int, fields domain.TableFields) (*domain.TableInfo, error) {
	args := m.Called(ctx, tID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableInfo), args.Error(1)
}

func (m *TableAccessor) Remove(ctx context.Context, tID int) error {
	return m.Called(ctx, tID).Error(0)
}

// CustomerAccessor is a testify mock for service.CustomerAccessor.
type CustomerAccessor struct {
	mock.Mock
}

func NewCustomerAccessor(t testingT) *CustomerAccessor {
	m := &CustomerAccessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CustomerAccessor) FetchAll(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *CustomerAccessor) FetchByID(ctx context.Context, cID int) (*domain.Customer, error) {
	args := m.Called(ctx, cID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *CustomerAccessor) Create(ctx context.Context, fields domain.CustomerFields) (*domain.Customer, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *CustomerAccessor) Update(ctx context.Context, cID int, fields domain.CustomerFields) (*domain.Customer, error) {
	args := m.Called(ctx, cID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *CustomerAccessor) Remove(ctx context.Context, cID int) error {
	return m.Called(ctx, cID).Error(0)
}

// OrderAccessor is a testify mock for service.OrderAccessor.
type OrderAccessor struct {
	mock.Mock
}

func NewOrderAccessor(t testingT) *OrderAccessor {
	m := &OrderAccessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderAccessor) FetchAll(ctx context.Context) ([]domain.OrderInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderInfo), args.Error(1)
}

func (m *OrderAccessor) FetchByID(ctx context.Context, oID int) (*domain.OrderInfo, error) {
	args := m.Called(ctx, oID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderInfo), args.Error(1)
}

func (m *OrderAccessor) Create(ctx context.Context, draft domain.OrderDraft) (*domain.OrderInfo, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderInfo), args.Error(1)
}

func (m *OrderAccessor) Update(ctx context.Context, oID int, draft domain.OrderDraft) (*domain.OrderInfo, error) {
	args := m.Called(ctx, oID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderInfo), args.Error(1)
}

func (m *OrderAccessor) Remove(ctx context.Context, oID int) error {
	return m.Called(ctx, oID).Error(0)
}

// OrderDetailAccessor is a testify mock for service.OrderDetailAccessor.
type OrderDetailAccessor struct {
	mock.Mock
}

func NewOrderDetailAccessor(t testingT) *OrderDetailAccessor {
	m := &OrderDetailAccessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderDetailAccessor) FetchAll(ctx context.Context) ([]domain.OrderDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderDetail), args.Error(1)
}

func (m *OrderDetailAccessor) FetchByID(ctx context.Context, odID int) (*domain.OrderDetail, error) {
	args := m.Called(ctx, odID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderDetail), args.Error(1)
}

func (m *OrderDetailAccessor) Create(ctx context.Context, fields domain.DetailFields) (*domain.OrderDetail, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderDetail), args.Error(1)
}

func (m *OrderDetailAccessor) Update(ctx context.Context, odID int, fields domain.DetailFields) (*domain.OrderDetail, error) {
	args := m.Called(ctx, odID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderDetail), args.Error(1)
}

func (m *OrderDetailAccessor) Remove(ctx context.Context, odID int) error {
	return m.Called(ctx, odID).Error(0)
}
