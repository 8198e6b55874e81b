package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floraverde/storefront/internal/model"
)

type fakeAPI struct {
	products      []model.Product
	categories    []model.Category
	productsHits  atomic.Int32
	ordersHits    atomic.Int32
	lastCategory  atomic.Value
	lastIdemKey   atomic.Value
	lastRequestID atomic.Value
	lastOrder     atomic.Value
	productStatus atomic.Int32
	orderStatus   atomic.Int32
	orderBody     string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{
		products: []model.Product{
			{ID: 1, Name: "Rosa roja", Price: 1000, Category: "Flores", Stock: true},
			{ID: 2, Name: "Cactus", Price: 2500, Category: "Suculentas", Stock: false},
		},
		categories: []model.Category{{ID: 1, Name: "Flores"}, {ID: 2, Name: "Suculentas"}},
		orderBody:  `{"id": 42, "status": "pending"}`,
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
			api.productsHits.Add(1)
			api.lastCategory.Store(req.URL.Query().Get("category"))
			api.lastRequestID.Store(req.Header.Get(HeaderRequestID))
			if status := api.productStatus.Load(); status != 0 {
				w.WriteHeader(int(status))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(api.products)
		})
		r.Get("/categories", func(w http.ResponseWriter, req *http.Request) {
			_ = json.NewEncoder(w).Encode(api.categories)
		})
		r.Post("/orders", func(w http.ResponseWriter, req *http.Request) {
			api.ordersHits.Add(1)
			api.lastIdemKey.Store(req.Header.Get(HeaderIdempotencyKey))
			var order model.Order
			if err := json.NewDecoder(req.Body).Decode(&order); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			api.lastOrder.Store(order)
			if status := api.orderStatus.Load(); status != 0 {
				w.WriteHeader(int(status))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(api.orderBody))
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return api, server
}

func TestListProducts(t *testing.T) {
	api, server := newFakeAPI(t)
	client := NewClient(server.URL + "/api/")

	products, err := client.ListProducts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Rosa roja", products[0].Name)
	assert.False(t, products[1].InStock())
	assert.Equal(t, "", api.lastCategory.Load())
	assert.NotEmpty(t, api.lastRequestID.Load())

	_, err = client.ListProducts(context.Background(), "Flores y Plantas")
	require.NoError(t, err)
	assert.Equal(t, "Flores y Plantas", api.lastCategory.Load())
}

func TestListProductsNullBody(t *testing.T) {
	api, server := newFakeAPI(t)
	api.products = nil
	client := NewClient(server.URL + "/api")

	products, err := client.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListCategories(t *testing.T) {
	_, server := newFakeAPI(t)
	client := NewClient(server.URL + "/api")

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Category{{ID: 1, Name: "Flores"}, {ID: 2, Name: "Suculentas"}}, categories)
}

func TestListProductsStatusError(t *testing.T) {
	api, server := newFakeAPI(t)
	api.productStatus.Store(http.StatusInternalServerError)
	client := NewClient(server.URL + "/api")

	_, err := client.ListProducts(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "/api/products", statusErr.Path)
}

func TestReadBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	api, server := newFakeAPI(t)
	api.productStatus.Store(http.StatusServiceUnavailable)
	client := NewClient(server.URL+"/api", WithBreaker(3, time.Minute))

	for i := 0; i < 3; i++ {
		_, err := client.ListProducts(context.Background(), "")
		require.ErrorIs(t, err, ErrUnexpectedStatus)
	}

	_, err := client.ListProducts(context.Background(), "")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(3), api.productsHits.Load(), "open breaker must not reach the backend")
}

func TestReadBreakerIgnoresClientErrors(t *testing.T) {
	api, server := newFakeAPI(t)
	api.productStatus.Store(http.StatusNotFound)
	client := NewClient(server.URL+"/api", WithBreaker(2, time.Minute))

	for i := 0; i < 4; i++ {
		_, err := client.ListProducts(context.Background(), "")
		require.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}
	assert.Equal(t, int32(4), api.productsHits.Load())
}

func TestCreateOrder(t *testing.T) {
	api, server := newFakeAPI(t)
	client := NewClient(server.URL + "/api")

	order := model.Order{
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.cl",
		Address:       "Av. Siempre Viva 123",
		Items:         []model.OrderItem{{ProductID: 1, Quantity: 2}},
		Total:         2000,
	}

	receipt, err := client.CreateOrder(context.Background(), order, "key-1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderID("42"), receipt.ID)
	assert.Equal(t, "pending", receipt.Status)
	assert.Equal(t, "key-1", api.lastIdemKey.Load())
	assert.Equal(t, order, api.lastOrder.Load())
}

func TestCreateOrderFailureIsNotRetried(t *testing.T) {
	api, server := newFakeAPI(t)
	api.orderStatus.Store(http.StatusBadGateway)
	client := NewClient(server.URL + "/api")

	_, err := client.CreateOrder(context.Background(), model.Order{Items: []model.OrderItem{}}, "key-2")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), api.ordersHits.Load())
}

func TestCreateOrderMalformedReceipt(t *testing.T) {
	api, server := newFakeAPI(t)
	api.orderBody = "<html>oops</html>"
	client := NewClient(server.URL + "/api")

	_, err := client.CreateOrder(context.Background(), model.Order{Items: []model.OrderItem{}}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode order receipt")
}

func TestResponseTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[" + strings.Repeat(" ", MaxResponseBytes) + "]"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	_, err := client.ListCategories(context.Background())
	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestCanceledContext(t *testing.T) {
	_, server := newFakeAPI(t)
	client := NewClient(server.URL + "/api")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListProducts(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
