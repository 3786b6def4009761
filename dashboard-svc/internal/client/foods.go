package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"foodplate-dashboard/dashboard-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the foods backend answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// FoodsClient talks to the /foods REST resource of the backend.
type FoodsClient struct {
	baseURL string
	client  HTTPClient
}

func NewFoodsClient(baseURL string, client HTTPClient) *FoodsClient {
	return &FoodsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *FoodsClient) List(ctx context.Context) ([]domain.FoodPlate, error) {
	var foods []domain.FoodPlate
	if err := c.do(ctx, http.MethodGet, "/foods", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

type createRequest struct {
	domain.FoodDraft
	Available bool `json:"available"`
}

func (c *FoodsClient) Create(ctx context.Context, draft domain.FoodDraft, available bool) (*domain.FoodPlate, error) {
	var created domain.FoodPlate
	body := createRequest{FoodDraft: draft, Available: available}
	if err := c.do(ctx, http.MethodPost, "/foods", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *FoodsClient) Update(ctx context.Context, food domain.FoodPlate) (*domain.FoodPlate, error) {
	var updated domain.FoodPlate
	if err := c.do(ctx, http.MethodPut, foodPath(food.ID), food, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *FoodsClient) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, foodPath(id), nil, nil)
}

func foodPath(id int) string {
	return "/foods/" + strconv.Itoa(id)
}

func (c *FoodsClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
