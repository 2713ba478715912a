package service

import (
	"context"

	"tableside/kitchen-svc/internal/domain"
	"tableside/kitchen-svc/internal/storage"
)

type StoreInterface interface {
	AddTicket(msg domain.OrderEvent) error
	Pending() []domain.Ticket
	MarkReady(orderID int) error
	Popular(limit int) ([]domain.PopularItem, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(msg domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
