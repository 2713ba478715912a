package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/frontdesk-svc/internal/domain"
)

type TableAPI struct {
	client *Client
}

func NewTableAPI(client *Client) *TableAPI {
	return &TableAPI{client: client}
}

func (a *TableAPI) FetchAll(ctx context.Context) ([]domain.TableInfo, error) {
	resp, err := a.client.do(ctx, http.MethodGet, tablesPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "list tables", Status: resp.StatusCode}
	}

	var body tableCollection
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode table list: %w", err)
	}

	tables := make([]domain.TableInfo, 0, len(body.Embedded.TableInfoes))
	for _, raw := range body.Embedded.TableInfoes {
		tables = append(tables, raw.flatten())
	}
	return tables, nil
}

func (a *TableAPI) FetchByID(ctx context.Context, tID int) (*domain.TableInfo, error) {
	resp, err := a.client.do(ctx, http.MethodGet, tableURI(tID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "table", Key: tID}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "fetch table", Status: resp.StatusCode}
	}

	var raw rawTable
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode table %d: %w", tID, err)
	}
	table := raw.flatten()
	return &table, nil
}

func (a *TableAPI) Create(ctx context.Context, fields domain.TableFields) (*domain.TableInfo, error) {
	resp, err := a.client.do(ctx, http.MethodPost, tablesPath, fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "table", Reason: "duplicate table"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "create table", Status: resp.StatusCode}
	}

	var raw rawTable
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode created table: %w", err)
	}
	table := raw.flatten()
	return &table, nil
}

func (a *TableAPI) Update(ctx context.Context, tID int, fields domain.TableFields) (*domain.TableInfo, error) {
	resp, err := a.client.do(ctx, http.MethodPut, tableURI(tID), fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return nil, &ConflictError{Resource: "table", Reason: "duplicate table"}
	}
	if !success(resp.StatusCode) {
		return nil, &RequestError{Op: "update table", Status: resp.StatusCode}
	}

	var raw rawTable
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode updated table %d: %w", tID, err)
	}
	table := raw.flatten()
	return &table, nil
}

func (a *TableAPI) Remove(ctx context.Context, tID int) error {
	resp, err := a.client.do(ctx, http.MethodDelete, tableURI(tID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return &RequestError{Op: "delete table", Status: resp.StatusCode}
	}
	return nil
}
