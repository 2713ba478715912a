package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/frontdesk-svc/internal/domain"
)

type DishAPI struct {
	client *Client
}

func NewDishAPI(client *Client) *DishAPI {
	return &DishAPI{client: client}
}

func (a *DishAPI) FetchAll(ctx context.Context) ([]domain.Dish, error) {
	resp, err := a.client.do(ctx, http.MethodGet, dishesPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "list dishes", Status: resp.StatusCode}
	}

	var body dishCollection
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode dish list: %w", err)
	}

	dishes := make([]domain.Dish, 0, len(body.Embedded.Dishes))
	for _, raw := range body.Embedded.Dishes {
		dishes = append(dishes, raw.flatten())
	}
	return dishes, nil
}

func (a *DishAPI) FetchByID(ctx context.Context, dNo int) (*domain.Dish, error) {
	resp, err := a.client.do(ctx, http.MethodGet, dishURI(dNo), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "dish", Key: dNo}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "fetch dish", Status: resp.StatusCode}
	}

	var raw rawDish
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dish %d: %w", dNo, err)
	}
	dish := raw.flatten()
	return &dish, nil
}

func (a *DishAPI) Create(ctx context.Context, fields domain.DishFields) (*domain.Dish, error) {
	resp, err := a.client.do(ctx, http.MethodPost, dishesPath, fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "dish", Reason: "duplicate dish name"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "create dish", Status: resp.StatusCode}
	}

	var raw rawDish
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode created dish: %w", err)
	}
	dish := raw.flatten()
	return &dish, nil
}

func (a *DishAPI) Update(ctx context.Context, dNo int, fields domain.DishFields) (*domain.Dish, error) {
	resp, err := a.client.do(ctx, http.MethodPut, dishURI(dNo), fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "dish", Reason: "duplicate dish name"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "update dish", Status: resp.StatusCode}
	}

	var raw rawDish
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode updated dish %d: %w", dNo, err)
	}
	dish := raw.flatten()
	return &dish, nil
}

func (a *DishAPI) Remove(ctx context.Context, dNo int) error {
	resp, err := a.client.do(ctx, http.MethodDelete, dishURI(dNo), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return &RequestError{Op: "delete dish", Status: resp.StatusCode}
	}
	return nil
}
