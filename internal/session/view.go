package session

import (
	"github.com/floraverde/storefront/internal/listing"
	"github.com/floraverde/storefront/internal/model"
)

// Number of products shown outside the catalog
const (
	FeaturedCount   = 4
	SuggestionCount = 3
)

// View is an immutable snapshot of everything the screens render
type View struct {
	Location Location

	// Loading is true while the products of the current page are fetched
	Loading bool
	// LoadErr is set when the last product fetch failed
	LoadErr error

	// Products holds the featured products (home) or the suggestions (cart)
	Products []model.Product
	// Page is the derived catalog page
	Page listing.Page

	Filter     model.FilterState
	Category   string
	Categories []model.Category

	Cart      model.Cart
	CartTotal int
	CartCount int

	Submitting bool
	OrderID    string
}
