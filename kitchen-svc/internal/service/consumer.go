package service

import (
	"context"
	"encoding/json"
	"log"

	"tableside/kitchen-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Kitchen Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "order_placed" {
			c.ProcessOrder(msg)
		}
	}
}

func (c *Consumer) ProcessOrder(msg domain.OrderEvent) {
	if msg.Type != "order_placed" {
		return
	}
	log.Printf("Processing order: OrderID=%d, TableID=%d, items=%d",
		msg.OrderID, msg.TableID, len(msg.Items))

	if err := c.Store.AddTicket(msg); err != nil {
		log.Printf("Error adding ticket: %v", err)
		return
	}

	log.Printf("Ticket queued for order %d", msg.OrderID)
}
