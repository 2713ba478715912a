package service

import (
	"context"

	"tableside/frontdesk-svc/internal/domain"
	"tableside/frontdesk-svc/internal/storage"
)

type DishAccessor interface {
	FetchAll(ctx context.Context) ([]domain.Dish, error)
	FetchByID(ctx context.Context, dNo int) (*domain.Dish, error)
	Create(ctx context.Context, fields domain.DishFields) (*domain.Dish, error)
	Update(ctx context.Context, dNo int, fields domain.DishFields) (*domain.Dish, error)
	Remove(ctx context.Context, dNo int) error
}

type SetMealAccessor interface {
	FetchAll(ctx context.Context) ([]domain.SetMeal, error)
	FetchByID(ctx context.Context, sNo int) (*domain.SetMeal, error)
	Create(ctx context.Context, fields domain.SetMealFields) (*domain.SetMeal, error)
	Update(ctx context.Context, sNo int, fields domain.SetMealFields) (*domain.SetMeal, error)
	Remove(ctx context.Context, sNo int) error
}

type TableAccessor interface {
	FetchAll(ctx context.Context) ([]domain.TableInfo, error)
	FetchByID(ctx context.Context, tID int) (*domain.TableInfo, error)
	Create(ctx context.Context, fields domain.TableFields) (*domain.TableInfo, error)
	Update(ctx context.Context, tID int, fields domain.TableFields) (*domain.TableInfo, error)
	Remove(ctx context.Context, tID int) error
}

type CustomerAccessor interface {
	FetchAll(ctx context.Context) ([]domain.Customer, error)
	FetchByID(ctx context.Context, cID int) (*domain.Customer, error)
	Create(ctx context.Context, fields domain.CustomerFields) (*domain.Customer, error)
	Update(ctx context.Context, cID int, fields domain.CustomerFields) (*domain.Customer, error)
	Remove(ctx context.Context, cID int) error
}

type OrderAccessor interface {
	FetchAll(ctx context.Context) ([]domain.OrderInfo, error)
	FetchByID(ctx context.Context, oID int) (*domain.OrderInfo, error)
	Create(ctx context.Context, draft domain.OrderDraft) (*domain.OrderInfo, error)
	Update(ctx context.Context, oID int, draft domain.OrderDraft) (*domain.OrderInfo, error)
	Remove(ctx context.Context, oID int) error
}

type OrderDetailAccessor interface {
	FetchAll(ctx context.Context) ([]domain.OrderDetail, error)
	FetchByID(ctx context.Context, odID int) (*domain.OrderDetail, error)
	Create(ctx context.Context, fields domain.DetailFields) (*domain.OrderDetail, error)
	Update(ctx context.Context, odID int, fields domain.DetailFields) (*domain.OrderDetail, error)
	Remove(ctx context.Context, odID int) error
}

type MenuCache interface {
	Get(ctx context.Context) (*domain.Menu, error)
	Set(ctx context.Context, menu *domain.Menu) error
	Invalidate(ctx context.Context) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.OrderEvent) error
}

var (
	_ DishAccessor        = (*storage.DishAPI)(nil)
	_ SetMealAccessor     = (*storage.SetMealAPI)(nil)
	_ TableAccessor       = (*storage.TableAPI)(nil)
	_ CustomerAccessor    = (*storage.CustomerAPI)(nil)
	_ OrderAccessor       = (*storage.OrderAPI)(nil)
	_ OrderDetailAccessor = (*storage.OrderDetailAPI)(nil)
	_ MenuCache           = (*storage.MenuCache)(nil)
	_ OrderPublisher      = (*storage.KafkaPublisher)(nil)
)
