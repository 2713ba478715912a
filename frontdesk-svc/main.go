package main

import (
	"net/http"
	"os"
	"time"

	"tableside/config"
	httpapi "tableside/frontdesk-svc/internal/api/http"
	"tableside/frontdesk-svc/internal/service"
	"tableside/frontdesk-svc/internal/storage"
)

func publicBaseURL() string {
	if url := os.Getenv("PUBLIC_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost"
}

func main() {
	client := storage.NewClient(config.BackendBaseURL(), &http.Client{})

	dishes := storage.NewDishAPI(client)
	sets := storage.NewSetMealAPI(client)
	tables := storage.NewTableAPI(client)
	customers := storage.NewCustomerAPI(client)
	orders := storage.NewOrderAPI(client)
	orderDetails := storage.NewOrderDetailAPI(client)

	var cache service.MenuCache
	if os.Getenv("REDIS_HOST") != "" {
		cache = storage.NewMenuCache(config.MustInitRedis(), 5*time.Minute)
	}
	catalog := service.NewCatalogService(dishes, sets, cache)

	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter("orders"))
	}

	carts := service.NewCartStore()
	checkout := service.NewCheckoutService(customers, orders, carts, publisher)

	handler := &httpapi.Handler{
		Dishes:       dishes,
		SetMeals:     sets,
		Tables:       tables,
		Customers:    customers,
		Orders:       orders,
		OrderDetails: orderDetails,
		Catalog:      catalog,
		Carts:        carts,
		Checkout:     checkout,
		QR:           service.DefaultQRGenerator{BaseURL: publicBaseURL()},
	}

	httpapi.StartServer(config.HTTPAddr("8080"), httpapi.NewRouter(handler))
}
