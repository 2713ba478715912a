package main

import (
	"context"
	"os"

	"tableside/config"
	httpapi "tableside/kitchen-svc/internal/api/http"
	"tableside/kitchen-svc/internal/service"
	"tableside/kitchen-svc/internal/storage"

	"github.com/redis/go-redis/v9"
)

func main() {
	var rdb *redis.Client
	if os.Getenv("REDIS_HOST") != "" {
		rdb = config.MustInitRedis()
	}
	store := storage.NewStore(rdb)

	reader := config.NewKafkaReader("orders", "kitchen-svc")
	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(store)
	httpapi.StartServer(config.HTTPAddr("8082"), httpapi.NewRouter(handler))
}
