package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/floraverde/storefront/internal/model"
)

// API paths relative to the base URL
const (
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathOrders     = "/orders"
)

// Request headers
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

// MaxResponseBytes caps decoded response bodies
const MaxResponseBytes = 1 << 20

// DefaultTimeout applies when no timeout option is given
const DefaultTimeout = 10 * time.Second

// Client talks to the storefront REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	reads      *gobreaker.CircuitBreaker[[]byte]
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient       *http.Client
	timeout          time.Duration
	breakerThreshold uint32
	breakerTimeout   time.Duration
}

// WithHTTPClient replaces the traced default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithBreaker sets how many consecutive read failures open the breaker and
// how long it stays open
func WithBreaker(threshold uint32, openTimeout time.Duration) Option {
	return func(o *clientOptions) {
		o.breakerThreshold = threshold
		o.breakerTimeout = openTimeout
	}
}

// NewClient creates a client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api")
func NewClient(baseURL string, opts ...Option) *Client {
	o := clientOptions{
		timeout:          DefaultTimeout,
		breakerThreshold: DefaultBreakerThreshold,
		breakerTimeout:   DefaultBreakerOpenTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   o.timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		reads:      newReadBreaker("storefront-reads", o.breakerThreshold, o.breakerTimeout),
	}
}

// BaseURL returns the API root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListProducts fetches the catalog, filtered server-side by category name
// when category is not empty
func (c *Client) ListProducts(ctx context.Context, category string) ([]model.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	body, err := c.read(ctx, PathProducts, query)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// ListCategories fetches all product categories
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	body, err := c.read(ctx, PathCategories, nil)
	if err != nil {
		return nil, err
	}

	var categories []model.Category
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

// CreateOrder submits an order. It bypasses the read breaker and is never
// retried; idempotencyKey lets the backend drop duplicates.
func (c *Client) CreateOrder(ctx context.Context, order model.Order, idempotencyKey string) (model.OrderReceipt, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return model.OrderReceipt{}, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, PathOrders, nil, bytes.NewReader(payload))
	if err != nil {
		return model.OrderReceipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(HeaderIdempotencyKey, idempotencyKey)
	}

	body, err := c.do(req)
	if err != nil {
		return model.OrderReceipt{}, err
	}

	var receipt model.OrderReceipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return model.OrderReceipt{}, fmt.Errorf("failed to decode order receipt: %w", err)
	}
	return receipt, nil
}

func (c *Client) read(ctx context.Context, path string, query url.Values) ([]byte, error) {
	body, err := c.reads.Execute(func() ([]byte, error) {
		req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			return nil, err
		}
		return c.do(req)
	})
	if err != nil {
		return nil, translateBreakerError(err)
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseBytes))
		return nil, &StatusError{Method: req.Method, Path: req.URL.Path, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", req.URL.Path, err)
	}
	if len(body) > MaxResponseBytes {
		return nil, fmt.Errorf("%s: %w", req.URL.Path, ErrResponseTooLarge)
	}
	return body, nil
}
