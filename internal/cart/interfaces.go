package cart

import (
	"github.com/floraverde/storefront/internal/model"
)

// Store persists the cart between sessions.
type Store interface {
	// Load returns the saved cart, or an empty cart when nothing valid is
	// stored. It never fails.
	Load() model.Cart

	// Save writes the cart synchronously. Failures are logged.
	Save(cart model.Cart)
}

// ProductLookup resolves product ids against the last-fetched catalog.
// catalog.Service implements it.
type ProductLookup interface {
	Lookup(id int) (model.Product, bool)
}

// Manager defines the interface for the cart service.
type Manager interface {
	SetUpdateCallback(func(model.Cart))
	AddToCart(productID int) bool
	RemoveFromCart(productID int) bool
	UpdateQuantity(productID, delta int) bool
	Clear()
	Total() int
	Count() int
	Snapshot() model.Cart
}
