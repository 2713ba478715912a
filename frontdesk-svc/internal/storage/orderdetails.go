package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/frontdesk-svc/internal/domain"
)

// OrderDetailAPI covers the standalone order-detail endpoints the admin
// console uses to edit single lines of an existing order.
type OrderDetailAPI struct {
	client *Client
}

func NewOrderDetailAPI(client *Client) *OrderDetailAPI {
	return &OrderDetailAPI{client: client}
}

func composeStandaloneDetail(fields domain.DetailFields) standaloneDetailPayload {
	p := standaloneDetailPayload{
		Quantity:  fields.Quantity,
		SubTotal:  fields.SubTotal,
		OrderInfo: orderURI(fields.OrderID),
	}
	if fields.Item.Type == domain.ItemSet {
		uri := setMealURI(fields.Item.ID)
		p.SetMeal = &uri
	} else {
		uri := dishURI(fields.Item.ID)
		p.Dish = &uri
	}
	return p
}

func (a *OrderDetailAPI) FetchAll(ctx context.Context) ([]domain.OrderDetail, error) {
	resp, err := a.client.do(ctx, http.MethodGet, orderDetailsPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "list order details", Status: resp.StatusCode}
	}

	var body orderDetailCollection
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode order detail list: %w", err)
	}

	details := make([]domain.OrderDetail, 0, len(body.Embedded.OrderDetails))
	for _, raw := range body.Embedded.OrderDetails {
		detail, err := decomposeDetail(raw)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (a *OrderDetailAPI) FetchByID(ctx context.Context, odID int) (*domain.OrderDetail, error) {
	resp, err := a.client.do(ctx, http.MethodGet, orderDetailURI(odID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "order detail", Key: odID}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "fetch order detail", Status: resp.StatusCode}
	}

	var raw rawOrderDetail
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode order detail %d: %w", odID, err)
	}
	detail, err := decomposeDetail(raw)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *OrderDetailAPI) Create(ctx context.Context, fields domain.DetailFields) (*domain.OrderDetail, error) {
	resp, err := a.client.do(ctx, http.MethodPost, orderDetailsPath, composeStandaloneDetail(fields))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "order detail", Reason: "conflicting order detail"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "create order detail", Status: resp.StatusCode}
	}

	var raw rawOrderDetail
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode created order detail: %w", err)
	}
	detail, err := decomposeDetail(raw)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *OrderDetailAPI) Update(ctx context.Context, odID int, fields domain.DetailFields) (*domain.OrderDetail, error) {
	resp, err := a.client.do(ctx, http.MethodPut, orderDetailURI(odID), composeStandaloneDetail(fields))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "order detail", Reason: "conflicting order detail"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "update order detail", Status: resp.StatusCode}
	}

	var raw rawOrderDetail
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode updated order detail %d: %w", odID, err)
	}
	detail, err := decomposeDetail(raw)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *OrderDetailAPI) Remove(ctx context.Context, odID int) error {
	resp, err := a.client.do(ctx, http.MethodDelete, orderDetailURI(odID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return &RequestError{Op: "delete order detail", Status: resp.StatusCode}
	}
	return nil
}
