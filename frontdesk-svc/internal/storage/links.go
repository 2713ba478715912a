package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// The URI convention of the backend lives here and nowhere else. Everything
// above this file works with bare identifiers.

const (
	dishesPath       = "/api/dishes"
	setMealsPath     = "/api/sets"
	tablesPath       = "/api/tables"
	customersPath    = "/api/customers"
	ordersPath       = "/api/orders"
	orderDetailsPath = "/api/orderDetails"
)

func dishURI(dNo int) string        { return fmt.Sprintf("%s/%d", dishesPath, dNo) }
func setMealURI(sNo int) string     { return fmt.Sprintf("%s/%d", setMealsPath, sNo) }
func tableURI(tID int) string       { return fmt.Sprintf("%s/%d", tablesPath, tID) }
func customerURI(cID int) string    { return fmt.Sprintf("%s/%d", customersPath, cID) }
func orderURI(oID int) string       { return fmt.Sprintf("%s/%d", ordersPath, oID) }
func orderDetailURI(odID int) string { return fmt.Sprintf("%s/%d", orderDetailsPath, odID) }

// trailingID parses the last path segment of an href as an identifier. It
// succeeds for item URIs (".../customers/5") and fails for association URIs
// (".../orders/3/customer").
func trailingID(href string) (int, bool) {
	seg := href
	if idx := strings.LastIndex(href, "/"); idx >= 0 {
		seg = href[idx+1:]
	}
	id, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return id, true
}

// resolveLinkID extracts the referenced entity's identifier from a relation
// link. Item URIs resolve locally; association URIs cost one extra fetch to
// read the related representation's self link. Failure is not fatal: the
// relation is simply left unset and the anomaly logged.
func (c *Client) resolveLinkID(ctx context.Context, l *link) int {
	if l == nil || l.Href == "" {
		return 0
	}
	if id, ok := trailingID(l.Href); ok {
		return id
	}
	id, err := c.fetchSelfID(ctx, l.Href)
	if err != nil {
		log.Printf("[frontdesk] resolve relation %s: %v", l.Href, err)
		return 0
	}
	return id
}

func (c *Client) fetchSelfID(ctx context.Context, href string) (int, error) {
	resp, err := c.doURL(ctx, http.MethodGet, href, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return 0, &RequestError{Op: "resolve association link", Status: resp.StatusCode}
	}

	var related selfLinked
	if err := json.NewDecoder(resp.Body).Decode(&related); err != nil {
		return 0, err
	}
	if related.Links.Self == nil {
		return 0, fmt.Errorf("association target has no self link")
	}
	id, ok := trailingID(related.Links.Self.Href)
	if !ok {
		return 0, fmt.Errorf("self link %s has no numeric identifier", related.Links.Self.Href)
	}
	return id, nil
}
