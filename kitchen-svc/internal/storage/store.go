package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/kitchen-svc/internal/domain"
)

// Store keeps the ticket board in memory and mirrors per-item sales counts
// into Redis sorted sets so popularity survives a restart. The board itself
// is rebuilt from the order topic on replay, so it needs no persistence.
type Store struct {
	mu      sync.Mutex
	tickets []domain.Ticket

	rdb *redis.Client
	ctx context.Context
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *Store) AddTicket(msg domain.OrderEvent) error {
	s.mu.Lock()
	s.tickets = append(s.tickets, domain.Ticket{
		OrderID:    msg.OrderID,
		TableID:    msg.TableID,
		TotalPrice: msg.TotalPrice,
		Items:      msg.Items,
		Status:     domain.TicketPending,
		PlacedAt:   msg.Timestamp,
	})
	s.mu.Unlock()

	if s.rdb != nil {
		today := time.Now().Format("2006-01-02")
		dailyKey := fmt.Sprintf("sales:daily:%s", today)
		for _, item := range msg.Items {
			member := fmt.Sprintf("%s:%d", item.ItemType, item.ItemID)
			s.rdb.ZIncrBy(s.ctx, dailyKey, float64(item.Quantity), member)
		}
		s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)
	}
	return nil
}

func (s *Store) Pending() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.Status == domain.TicketPending {
			pending = append(pending, t)
		}
	}
	return pending
}

func (s *Store) MarkReady(orderID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].OrderID == orderID && s.tickets[i].Status == domain.TicketPending {
			s.tickets[i].Status = domain.TicketReady
			return nil
		}
	}
	return fmt.Errorf("no pending ticket for order %d", orderID)
}

// Popular returns today's best-selling items, most ordered first.
func (s *Store) Popular(limit int) ([]domain.PopularItem, error) {
	if s.rdb == nil {
		return []domain.PopularItem{}, nil
	}

	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("sales:daily:%s", today)
	entries, err := s.rdb.ZRevRangeWithScores(s.ctx, dailyKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	popular := make([]domain.PopularItem, 0, len(entries))
	for _, entry := range entries {
		member, _ := entry.Member.(string)
		popular = append(popular, domain.PopularItem{Member: member, Count: entry.Score})
	}
	return popular, nil
}
