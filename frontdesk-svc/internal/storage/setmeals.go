package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/frontdesk-svc/internal/domain"
)

type SetMealAPI struct {
	client *Client
}

func NewSetMealAPI(client *Client) *SetMealAPI {
	return &SetMealAPI{client: client}
}

func (a *SetMealAPI) FetchAll(ctx context.Context) ([]domain.SetMeal, error) {
	resp, err := a.client.do(ctx, http.MethodGet, setMealsPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "list set meals", Status: resp.StatusCode}
	}

	var body setMealCollection
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode set meal list: %w", err)
	}

	sets := make([]domain.SetMeal, 0, len(body.Embedded.SetMeals))
	for _, raw := range body.Embedded.SetMeals {
		sets = append(sets, raw.flatten())
	}
	return sets, nil
}

func (a *SetMealAPI) FetchByID(ctx context.Context, sNo int) (*domain.SetMeal, error) {
	resp, err := a.client.do(ctx, http.MethodGet, setMealURI(sNo), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "set meal", Key: sNo}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "fetch set meal", Status: resp.StatusCode}
	}

	var raw rawSetMeal
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode set meal %d: %w", sNo, err)
	}
	set := raw.flatten()
	return &set, nil
}

func (a *SetMealAPI) Create(ctx context.Context, fields domain.SetMealFields) (*domain.SetMeal, error) {
	resp, err := a.client.do(ctx, http.MethodPost, setMealsPath, fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "set meal", Reason: "duplicate set meal name"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "create set meal", Status: resp.StatusCode}
	}

	var raw rawSetMeal
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode created set meal: %w", err)
	}
	set := raw.flatten()
	return &set, nil
}

func (a *SetMealAPI) Update(ctx context.Context, sNo int, fields domain.SetMealFields) (*domain.SetMeal, error) {
	resp, err := a.client.do(ctx, http.MethodPut, setMealURI(sNo), fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "set meal", Reason: "duplicate set meal name"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "update set meal", Status: resp.StatusCode}
	}

	var raw rawSetMeal
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode updated set meal %d: %w", sNo, err)
	}
	set := raw.flatten()
	return &set, nil
}

func (a *SetMealAPI) Remove(ctx context.Context, sNo int) error {
	resp, err := a.client.do(ctx, http.MethodDelete, setMealURI(sNo), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return &RequestError{Op: "delete set meal", Status: resp.StatusCode}
	}
	return nil
}
