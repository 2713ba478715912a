package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/frontdesk-svc/internal/domain"
)

type OrderAPI struct {
	client *Client
}

func NewOrderAPI(client *Client) *OrderAPI {
	return &OrderAPI{client: client}
}

// decomposeDetail classifies an embedded order detail by which relation link
// it carries. Exactly one of dish/setMeal is expected; a detail with neither
// is unrecoverable and fails the whole fetch.
func decomposeDetail(raw rawOrderDetail) (domain.OrderDetail, error) {
	var item domain.ItemRef
	switch {
	case raw.Links.Dish != nil:
		id, _ := trailingID(raw.Links.Dish.Href)
		item = domain.ItemRef{Type: domain.ItemDish, ID: id}
	case raw.Links.SetMeal != nil:
		id, _ := trailingID(raw.Links.SetMeal.Href)
		item = domain.ItemRef{Type: domain.ItemSet, ID: id}
	default:
		return domain.OrderDetail{}, fmt.Errorf("order detail %d: %w", raw.OdID, ErrMalformedRelation)
	}
	return domain.OrderDetail{
		OdID:     raw.OdID,
		Quantity: raw.Quantity,
		SubTotal: raw.SubTotal,
		ItemRef:  item,
	}, nil
}

// composeDetail turns a flat order line into the link-based wire form: the
// chosen item's URI in its slot, the other slot explicitly null.
func composeDetail(d domain.DetailDraft) detailPayload {
	p := detailPayload{Quantity: d.Quantity, SubTotal: d.SubTotal}
	if d.Item.Type == domain.ItemSet {
		uri := setMealURI(d.Item.ID)
		p.SetMeal = &uri
	} else {
		uri := dishURI(d.Item.ID)
		p.Dish = &uri
	}
	return p
}

func composeOrder(draft domain.OrderDraft) orderPayload {
	payload := orderPayload{
		ODateTime:      draft.ODateTime,
		TotalPrice:     draft.TotalPrice,
		PayStatus:      draft.PayStatus,
		Customer:       customerURI(draft.CustomerID),
		TableInfo:      tableURI(draft.TableID),
		OrderDetailses: make([]detailPayload, 0, len(draft.Details)),
	}
	for _, d := range draft.Details {
		payload.OrderDetailses = append(payload.OrderDetailses, composeDetail(d))
	}
	return payload
}

// flattenOrder converts a raw order into the flat model: relation links
// become bare customer/table identifiers (possibly via the resolver's
// fallback fetch) and embedded details are decomposed into typed lines.
func (c *Client) flattenOrder(ctx context.Context, raw rawOrderInfo) (domain.OrderInfo, error) {
	order := domain.OrderInfo{
		OID:        raw.OID,
		ODateTime:  raw.ODateTime,
		TotalPrice: raw.TotalPrice,
		PayStatus:  raw.PayStatus,
		CustomerID: c.resolveLinkID(ctx, raw.Links.Customer),
		TableID:    c.resolveLinkID(ctx, raw.Links.TableInfo),
		Details:    make([]domain.OrderDetail, 0, len(raw.Embedded.OrderDetailses)),
	}
	for _, d := range raw.Embedded.OrderDetailses {
		detail, err := decomposeDetail(d)
		if err != nil {
			return domain.OrderInfo{}, err
		}
		order.Details = append(order.Details, detail)
	}
	return order, nil
}

func (a *OrderAPI) FetchAll(ctx context.Context) ([]domain.OrderInfo, error) {
	resp, err := a.client.do(ctx, http.MethodGet, ordersPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "list orders", Status: resp.StatusCode}
	}

	var body orderCollection
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode order list: %w", err)
	}

	orders := make([]domain.OrderInfo, 0, len(body.Embedded.OrderInfoes))
	for _, raw := range body.Embedded.OrderInfoes {
		order, err := a.client.flattenOrder(ctx, raw)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (a *OrderAPI) FetchByID(ctx context.Context, oID int) (*domain.OrderInfo, error) {
	resp, err := a.client.do(ctx, http.MethodGet, orderURI(oID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "order", Key: oID}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "fetch order", Status: resp.StatusCode}
	}

	var raw rawOrderInfo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode order %d: %w", oID, err)
	}
	order, err := a.client.flattenOrder(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *OrderAPI) Create(ctx context.Context, draft domain.OrderDraft) (*domain.OrderInfo, error) {
	resp, err := a.client.do(ctx, http.MethodPost, ordersPath, composeOrder(draft))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "order", Reason: "conflicting order"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "create order", Status: resp.StatusCode}
	}

	var raw rawOrderInfo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode created order: %w", err)
	}
	order, err := a.client.flattenOrder(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *OrderAPI) Update(ctx context.Context, oID int, draft domain.OrderDraft) (*domain.OrderInfo, error) {
	resp, err := a.client.do(ctx, http.MethodPut, orderURI(oID), composeOrder(draft))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "order", Reason: "conflicting order"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "update order", Status: resp.StatusCode}
	}

	var raw rawOrderInfo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode updated order %d: %w", oID, err)
	}
	order, err := a.client.flattenOrder(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *OrderAPI) Remove(ctx context.Context, oID int) error {
	resp, err := a.client.do(ctx, http.MethodDelete, orderURI(oID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return &RequestError{Op: "delete order", Status: resp.StatusCode}
	}
	return nil
}
