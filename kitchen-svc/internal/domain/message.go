package domain

import "time"

type OrderItem struct {
	ItemType string `json:"item_type"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// OrderEvent is the message the frontdesk publishes after a checkout.
type OrderEvent struct {
	Type       string      `json:"type"`
	OrderID    int         `json:"order_id"`
	TableID    int         `json:"table_id"`
	TotalPrice float64     `json:"total_price"`
	Items      []OrderItem `json:"items"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Ticket is a pending kitchen order as shown on the board.
type Ticket struct {
	OrderID    int         `json:"order_id"`
	TableID    int         `json:"table_id"`
	TotalPrice float64     `json:"total_price"`
	Items      []OrderItem `json:"items"`
	Status     string      `json:"status"`
	PlacedAt   time.Time   `json:"placed_at"`
}

const (
	TicketPending = "pending"
	TicketReady   = "ready"
)

type PopularItem struct {
	Member string  `json:"item"`
	Count  float64 `json:"count"`
}
