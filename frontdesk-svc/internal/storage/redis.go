package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/frontdesk-svc/internal/domain"
)

const menuCacheKey = "menu:catalog"

// MenuCache keeps a flattened catalog snapshot in Redis so the client menu
// page does not hit the backend on every load. Stale entries age out via TTL;
// admin catalog writes invalidate eagerly.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) Get(ctx context.Context) (*domain.Menu, error) {
	payload, err := c.Client.Get(ctx, menuCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var menu domain.Menu
	if err := json.Unmarshal(payload, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (c *MenuCache) Set(ctx context.Context, menu *domain.Menu) error {
	payload, err := json.Marshal(menu)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuCacheKey, payload, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, menuCacheKey).Err()
}
