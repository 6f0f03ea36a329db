// Package recordstore is the HTTP client for the record store API.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/model"
)

// Client talks to the record store. Every call is bounded by the client
// timeout in addition to the caller's context.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for baseURL. A nil httpClient gets a default one
// with the given timeout.
func New(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

type call struct {
	op     string
	method string
	path   string
	body   any
	entity model.Entity
	id     int64
}

// FetchAll retrieves the full dataset.
func (c *Client) FetchAll(ctx context.Context) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := c.do(ctx, call{op: "fetch data", method: http.MethodGet, path: "/api/data"}, &snap); err != nil {
		return nil, err
	}
	return snap.Normalize(), nil
}

// Create posts a new record and returns the id the store assigned.
func (c *Client) Create(ctx context.Context, entity model.Entity, payload any) (int64, error) {
	var resp struct {
		NewID int64 `json:"newId"`
	}
	err := c.do(ctx, call{
		op:     "create " + entity.Singular(),
		method: http.MethodPost,
		path:   "/api/" + entity.Path(),
		body:   payload,
		entity: entity,
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.NewID, nil
}

// Update replaces the record's editable fields with payload.
func (c *Client) Update(ctx context.Context, entity model.Entity, id int64, payload any) error {
	return c.do(ctx, call{
		op:     "update " + entity.Singular(),
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/%s/%d", entity.Path(), id),
		body:   payload,
		entity: entity,
		id:     id,
	}, nil)
}

func (c *Client) Delete(ctx context.Context, entity model.Entity, id int64) error {
	return c.do(ctx, call{
		op:     "delete " + entity.Singular(),
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/%s/%d", entity.Path(), id),
		entity: entity,
		id:     id,
	}, nil)
}

// Reset restores the sample dataset on the server.
func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, call{op: "reset data", method: http.MethodPost, path: "/api/reset-data"}, nil)
}

// Activity lists recent change events. limit <= 0 uses the server default.
func (c *Client) Activity(ctx context.Context, limit int) ([]model.Activity, error) {
	path := "/api/activity"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var items []model.Activity
	if err := c.do(ctx, call{op: "list activity", method: http.MethodGet, path: path}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	var body io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", cl.op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &appErrors.TransportError{Op: cl.op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(cl, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &appErrors.TransportError{Op: cl.op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// classify turns a non-2xx response into a typed error. Only responses that
// carry a readable {"error": ...} body count as store-reported failures.
func classify(cl call, resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Error == "" {
		return &appErrors.TransportError{Op: cl.op, Status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNotFound && cl.id > 0 {
		return &appErrors.NotFoundError{Entity: cl.entity.Singular(), ID: cl.id, Message: payload.Error}
	}
	return appErrors.NewValidation("%s", payload.Error)
}
