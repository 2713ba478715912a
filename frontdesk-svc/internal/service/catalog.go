package service

import (
	"context"
	"log"

	"tableside/frontdesk-svc/internal/domain"
)

// CatalogService serves the customer-facing menu: dishes and set meals,
// read through an optional Redis cache.
type CatalogService struct {
	dishes DishAccessor
	sets   SetMealAccessor
	cache  MenuCache
}

func NewCatalogService(dishes DishAccessor, sets SetMealAccessor, cache MenuCache) *CatalogService {
	return &CatalogService{dishes: dishes, sets: sets, cache: cache}
}

func (s *CatalogService) Menu(ctx context.Context) (*domain.Menu, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("[frontdesk] menu cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	dishes, err := s.dishes.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := s.sets.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	menu := &domain.Menu{Dishes: dishes, SetMeals: sets}
	if s.cache != nil {
		if err := s.cache.Set(ctx, menu); err != nil {
			log.Printf("[frontdesk] menu cache write failed: %v", err)
		}
	}
	return menu, nil
}

// InvalidateMenu drops the cached catalog after an admin changes a dish or
// set meal, so the next menu load reflects the edit.
func (s *CatalogService) InvalidateMenu(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[frontdesk] menu cache invalidate failed: %v", err)
	}
}
