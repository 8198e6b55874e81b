package cart

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floraverde/storefront/internal/model"
)

type stubCatalog map[int]model.Product

func (c stubCatalog) Lookup(id int) (model.Product, bool) {
	p, ok := c[id]
	return p, ok
}

func newCatalog() stubCatalog {
	return stubCatalog{
		1: {ID: 1, Name: "Rosa roja", Price: 1000, Stock: true},
		2: {ID: 2, Name: "Cactus", Price: 500, Stock: true},
		3: {ID: 3, Name: "Orquídea rosa", Price: 15990, Stock: true},
	}
}

func TestNewServiceLoadsStore(t *testing.T) {
	store := NewMemoryStore()
	store.Save(sampleCart())

	service := NewService(store, newCatalog())
	assert.Equal(t, sampleCart(), service.Snapshot())
	assert.Equal(t, 3, service.Count())
}

func TestAddToCart(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store, newCatalog())

	require.True(t, service.AddToCart(1))
	require.True(t, service.AddToCart(2))
	require.True(t, service.AddToCart(1))

	cart := service.Snapshot()
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 2, cart[1].ID)
	assert.Equal(t, 1, cart[1].Quantity)

	// Every mutation is persisted
	assert.Equal(t, cart, store.Load())
}

func TestUnknownProductIsNoop(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store, newCatalog())
	service.AddToCart(1)

	calls := 0
	service.SetUpdateCallback(func(model.Cart) { calls++ })

	assert.False(t, service.AddToCart(99))
	assert.False(t, service.RemoveFromCart(99))
	assert.False(t, service.UpdateQuantity(99, 1))

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, service.Count())
}

func TestUpdateQuantity(t *testing.T) {
	service := NewService(NewMemoryStore(), newCatalog())
	service.AddToCart(1)
	service.AddToCart(2)

	service.UpdateQuantity(1, 3)
	assert.Equal(t, 4, service.Snapshot()[0].Quantity)

	service.UpdateQuantity(1, -2)
	assert.Equal(t, 2, service.Snapshot()[0].Quantity)

	// Reaching zero removes the line
	service.UpdateQuantity(2, -1)
	cart := service.Snapshot()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].ID)

	// Large negative deltas remove too
	service.UpdateQuantity(1, -10)
	assert.Empty(t, service.Snapshot())
}

func TestRemoveFromCart(t *testing.T) {
	service := NewService(NewMemoryStore(), newCatalog())
	service.AddToCart(1)
	service.AddToCart(2)
	service.AddToCart(3)

	assert.True(t, service.RemoveFromCart(2))

	cart := service.Snapshot()
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].ID)
	assert.Equal(t, 3, cart[1].ID)
}

func TestClear(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store, newCatalog())
	service.AddToCart(1)

	service.Clear()
	assert.Empty(t, service.Snapshot())
	assert.Empty(t, store.Load())
	assert.Equal(t, 0, service.Total())
}

func TestTotal(t *testing.T) {
	cart := model.Cart{
		{Product: model.Product{ID: 1, Price: 1000}, Quantity: 2},
		{Product: model.Product{ID: 2, Price: 500}, Quantity: 1},
	}
	assert.Equal(t, 2500, ComputeTotal(cart))

	store := NewMemoryStore()
	store.Save(cart)
	service := NewService(store, newCatalog())
	assert.Equal(t, 2500, service.Total())

	// Recomputed after each change
	service.UpdateQuantity(2, 1)
	assert.Equal(t, 3000, service.Total())
}

func TestUpdateCallbackReceivesSnapshot(t *testing.T) {
	service := NewService(NewMemoryStore(), newCatalog())

	var got model.Cart
	service.SetUpdateCallback(func(cart model.Cart) { got = cart })

	service.AddToCart(3)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	got[0].Quantity = 50
	assert.Equal(t, 1, service.Snapshot()[0].Quantity)
}

func TestCallbackMayReadService(t *testing.T) {
	service := NewService(NewMemoryStore(), newCatalog())

	count := -1
	service.SetUpdateCallback(func(model.Cart) { count = service.Count() })

	service.AddToCart(1)
	assert.Equal(t, 1, count)
}

func TestQuantityInvariantRandomSequence(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store, newCatalog())
	rng := rand.New(rand.NewPCG(42, 7))

	for i := 0; i < 2000; i++ {
		id := rng.IntN(5) // 0 and 4 are unknown ids
		switch rng.IntN(3) {
		case 0:
			service.AddToCart(id)
		case 1:
			service.RemoveFromCart(id)
		case 2:
			service.UpdateQuantity(id, rng.IntN(7)-3)
		}

		cart := service.Snapshot()
		seen := make(map[int]bool)
		for _, item := range cart {
			require.GreaterOrEqual(t, item.Quantity, 1)
			require.False(t, seen[item.ID], "duplicate line for product %d", item.ID)
			seen[item.ID] = true
		}
	}

	assert.Equal(t, service.Snapshot(), store.Load())
}
