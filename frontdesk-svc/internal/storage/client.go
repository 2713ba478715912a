package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the remote restaurant API. It carries no state beyond the
// base URL; every call is an independent request/response round trip.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// do issues a request against a path under the base URL. A non-nil body is
// sent as JSON.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	return c.doURL(ctx, method, c.baseURL+path, body)
}

// doURL is the absolute-URL variant; the link resolver needs it because the
// backend hands out fully qualified hrefs.
func (c *Client) doURL(ctx context.Context, method, url string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}
