package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/frontdesk-svc/internal/domain"
)

type CustomerAPI struct {
	client *Client
}

func NewCustomerAPI(client *Client) *CustomerAPI {
	return &CustomerAPI{client: client}
}

func (a *CustomerAPI) FetchAll(ctx context.Context) ([]domain.Customer, error) {
	resp, err := a.client.do(ctx, http.MethodGet, customersPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "list customers", Status: resp.StatusCode}
	}

	var body customerCollection
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode customer list: %w", err)
	}

	customers := make([]domain.Customer, 0, len(body.Embedded.Customers))
	for _, raw := range body.Embedded.Customers {
		customers = append(customers, raw.flatten())
	}
	return customers, nil
}

func (a *CustomerAPI) FetchByID(ctx context.Context, cID int) (*domain.Customer, error) {
	resp, err := a.client.do(ctx, http.MethodGet, customerURI(cID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "customer", Key: cID}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "fetch customer", Status: resp.StatusCode}
	}

	var raw rawCustomer
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode customer %d: %w", cID, err)
	}
	customer := raw.flatten()
	return &customer, nil
}

func (a *CustomerAPI) Create(ctx context.Context, fields domain.CustomerFields) (*domain.Customer, error) {
	resp, err := a.client.do(ctx, http.MethodPost, customersPath, fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "customer", Reason: "duplicate phone number"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "create customer", Status: resp.StatusCode}
	}

	var raw rawCustomer
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode created customer: %w", err)
	}
	customer := raw.flatten()
	return &customer, nil
}

func (a *CustomerAPI) Update(ctx context.Context, cID int, fields domain.CustomerFields) (*domain.Customer, error) {
	resp, err := a.client.do(ctx, http.MethodPut, customerURI(cID), fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "customer", Reason: "duplicate phone number"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "update customer", Status: resp.StatusCode}
	}

	var raw rawCustomer
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode updated customer %d: %w", cID, err)
	}
	customer := raw.flatten()
	return &customer, nil
}

func (a *CustomerAPI) Remove(ctx context.Context, cID int) error {
	resp, err := a.client.do(ctx, http.MethodDelete, customerURI(cID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return &RequestError{Op: "delete customer", Status: resp.StatusCode}
	}
	return nil
}
