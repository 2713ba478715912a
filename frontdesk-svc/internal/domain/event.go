package domain

import "time"

type OrderEventItem struct {
	ItemType ItemType `json:"item_type"`
	ItemID   int      `json:"item_id"`
	Quantity int      `json:"quantity"`
}

// OrderEvent is published to Kafka after a checkout succeeds so the kitchen
// sees the ticket without polling the backend.
type OrderEvent struct {
	Type       string           `json:"type"`
	OrderID    int              `json:"order_id"`
	TableID    int              `json:"table_id"`
	TotalPrice float64          `json:"total_price"`
	Items      []OrderEventItem `json:"items"`
	Timestamp  time.Time        `json:"timestamp"`
}
