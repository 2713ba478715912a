package tests

import (
	"context"
	"testing"
	"time"

	"tableside/frontdesk-svc/internal/domain"
	"tableside/frontdesk-svc/internal/mocks"
	"tableside/frontdesk-svc/internal/service"
	"tableside/frontdesk-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_MenuCacheMiss(t *testing.T) {
	ctx := context.Background()
	dishes := mocks.NewDishAccessor(t)
	sets := mocks.NewSetMealAccessor(t)
	cache := mocks.NewMenuCache(t)

	cache.On("Get", ctx).Return(nil, nil).Once()
	dishes.On("FetchAll", ctx).Return([]domain.Dish{{DNo: 4, DName: "宫保鸡丁", DPrice: 28}}, nil).Once()
	sets.On("FetchAll", ctx).Return([]domain.SetMeal{{SNo: 2, SName: "双人套餐", SPrice: 88}}, nil).Once()
	cache.On("Set", ctx, mock.Anything).Return(nil).Once()

	svc := service.NewCatalogService(dishes, sets, cache)
	menu, err := svc.Menu(ctx)

	require.NoError(t, err)
	assert.Len(t, menu.Dishes, 1)
	assert.Len(t, menu.SetMeals, 1)
}

func TestCatalogService_MenuCacheHitSkipsBackend(t *testing.T) {
	ctx := context.Background()
	dishes := mocks.NewDishAccessor(t)
	sets := mocks.NewSetMealAccessor(t)
	cache := mocks.NewMenuCache(t)

	cached := &domain.Menu{Dishes: []domain.Dish{{DNo: 4}}}
	cache.On("Get", ctx).Return(cached, nil).Once()

	svc := service.NewCatalogService(dishes, sets, cache)
	menu, err := svc.Menu(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, menu)
	dishes.AssertNotCalled(t, "FetchAll")
	sets.AssertNotCalled(t, "FetchAll")
}

// A broken cache degrades to a direct backend read instead of failing the
// menu page.
func TestCatalogService_MenuCacheErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	dishes := mocks.NewDishAccessor(t)
	sets := mocks.NewSetMealAccessor(t)
	cache := mocks.NewMenuCache(t)

	cache.On("Get", ctx).Return(nil, assert.AnError).Once()
	dishes.On("FetchAll", ctx).Return([]domain.Dish{}, nil).Once()
	sets.On("FetchAll", ctx).Return([]domain.SetMeal{}, nil).Once()
	cache.On("Set", ctx, mock.Anything).Return(assert.AnError).Once()

	svc := service.NewCatalogService(dishes, sets, cache)
	_, err := svc.Menu(ctx)

	assert.NoError(t, err)
}

func TestCatalogService_NoCacheConfigured(t *testing.T) {
	ctx := context.Background()
	dishes := mocks.NewDishAccessor(t)
	sets := mocks.NewSetMealAccessor(t)

	dishes.On("FetchAll", ctx).Return([]domain.Dish{}, nil).Once()
	sets.On("FetchAll", ctx).Return([]domain.SetMeal{}, nil).Once()

	svc := service.NewCatalogService(dishes, sets, nil)
	_, err := svc.Menu(ctx)

	assert.NoError(t, err)
	svc.InvalidateMenu(ctx)
}

func TestMenuCache_RoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := storage.NewMenuCache(client, 5*time.Minute)
	ctx := context.Background()

	missed, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, missed, "empty cache reads as a miss, not an error")

	menu := &domain.Menu{
		Dishes:   []domain.Dish{{DNo: 4, DName: "宫保鸡丁", DPrice: 28, DType: "热菜"}},
		SetMeals: []domain.SetMeal{{SNo: 2, SName: "双人套餐", SPrice: 88}},
	}
	require.NoError(t, cache.Set(ctx, menu))

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, menu, got)

	require.NoError(t, cache.Invalidate(ctx))
	gone, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMenuCache_EntriesExpire(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := storage.NewMenuCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &domain.Menu{}))
	server.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
