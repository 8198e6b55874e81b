package session

import (
	"context"
	"log"
	"sync"

	"github.com/floraverde/storefront/internal/cart"
	"github.com/floraverde/storefront/internal/catalog"
	"github.com/floraverde/storefront/internal/checkout"
	"github.com/floraverde/storefront/internal/listing"
	"github.com/floraverde/storefront/internal/model"
)

// Session owns the storefront state. Commands may be called from any
// goroutine; subscribers are invoked in publication order and must not call
// back into the session synchronously.
type Session struct {
	catalog  catalog.Fetcher
	cart     cart.Manager
	checkout Checkout

	mu         sync.Mutex
	location   Location
	filter     model.FilterState
	category   string
	categories []model.Category
	products   []model.Product
	loadErr    error
	loading    bool
	submitting bool
	fetchSeq   uint64

	publishMu   sync.Mutex
	subscribers []func(View)
}

// New creates a session on the home page and subscribes to cart updates
func New(fetcher catalog.Fetcher, carts cart.Manager, orders Checkout) *Session {
	s := &Session{
		catalog:  fetcher,
		cart:     carts,
		checkout: orders,
		location: NewLocation(PageHome),
		filter:   model.NewFilterState(),
		products: []model.Product{},
	}
	carts.SetUpdateCallback(func(model.Cart) {
		s.publish()
	})
	return s
}

// Subscribe registers fn to receive every published view
func (s *Session) Subscribe(fn func(View)) {
	s.publishMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.publishMu.Unlock()
}

// Location returns the current location
func (s *Session) Location() Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// View computes the current view
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Navigate opens the location given as "page?query"
func (s *Session) Navigate(ctx context.Context, raw string) error {
	return s.Open(ctx, ParseLocation(raw))
}

// Open switches to loc and loads what the page needs. The checkout page
// redirects to the cart when the cart is empty. The returned error is the
// product fetch failure, which is also carried by the view.
func (s *Session) Open(ctx context.Context, loc Location) error {
	if loc.Page == PageCheckout && s.cart.Snapshot().IsEmpty() {
		log.Printf("checkout opened with an empty cart, redirecting to cart")
		loc = NewLocation(PageCart)
	}

	s.mu.Lock()
	s.location = loc
	s.loadErr = nil
	s.loading = false
	s.fetchSeq++
	s.products = []model.Product{}
	if loc.Page == PageCatalog {
		s.filter = model.NewFilterState()
		s.category = loc.Get(ParamCategory)
	}
	s.mu.Unlock()

	switch loc.Page {
	case PageHome:
		return s.fetch(ctx, FeaturedCount, "")
	case PageCatalog:
		s.mu.Lock()
		needCategories := len(s.categories) == 0
		category := s.category
		s.mu.Unlock()

		if needCategories {
			s.LoadCategories(ctx)
		}
		return s.fetch(ctx, 0, category)
	case PageCart:
		return s.fetch(ctx, SuggestionCount, "")
	default:
		s.publish()
		return nil
	}
}

// LoadCategories fetches the category list. Failures leave it empty.
func (s *Session) LoadCategories(ctx context.Context) {
	categories := s.catalog.FetchCategories(ctx)

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	s.publish()
}

// SetCategory selects a category, mirrors it into the location and fetches
// its products. An empty name shows all products.
func (s *Session) SetCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	s.category = name
	if s.location.Page == PageCatalog {
		s.location = s.location.With(ParamCategory, name)
	}
	s.mu.Unlock()

	return s.fetch(ctx, 0, name)
}

// SetSearch changes the search term of the catalog listing
func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	s.filter.SearchTerm = term
	s.mu.Unlock()
	s.publish()
}

// SetSort changes the catalog ordering
func (s *Session) SetSort(key model.SortKey) {
	if !key.IsValid() {
		key = model.SortNone
	}
	s.mu.Lock()
	s.filter.SortKey = key
	s.mu.Unlock()
	s.publish()
}

// SetPage moves the catalog to page; out of range pages are clamped
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	s.filter.CurrentPage = page
	s.mu.Unlock()
	s.publish()
}

// AddToCart adds one unit of a product from the last-fetched catalog
func (s *Session) AddToCart(productID int) bool {
	return s.cart.AddToCart(productID)
}

// RemoveFromCart drops a cart line
func (s *Session) RemoveFromCart(productID int) {
	s.cart.RemoveFromCart(productID)
}

// UpdateQuantity changes a cart line by delta
func (s *Session) UpdateQuantity(productID, delta int) {
	s.cart.UpdateQuantity(productID, delta)
}

// ClearCart empties the cart
func (s *Session) ClearCart() {
	s.cart.Clear()
}

// ProceedToCheckout opens the checkout page, or returns checkout.ErrEmptyCart
// and stays where it is
func (s *Session) ProceedToCheckout(ctx context.Context) error {
	if err := s.checkout.ProceedToCheckout(); err != nil {
		return err
	}
	return s.Open(ctx, NewLocation(PageCheckout))
}

// SubmitOrder submits the checkout form. On success the session moves to
// the thank-you page for the new order; on failure it stays on checkout and
// the cart is untouched.
func (s *Session) SubmitOrder(ctx context.Context, form checkout.Form) (model.OrderReceipt, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return model.OrderReceipt{}, checkout.ErrSubmissionInProgress
	}
	s.submitting = true
	s.mu.Unlock()
	s.publish()

	receipt, err := s.checkout.Submit(ctx, form)

	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()

	if err != nil {
		s.publish()
		return model.OrderReceipt{}, err
	}

	thankYou := NewLocation(PageThankYou).With(ParamOrderID, receipt.ID.String())
	if openErr := s.Open(ctx, thankYou); openErr != nil {
		log.Printf("failed to open %s: %v", thankYou, openErr)
	}
	return receipt, nil
}

// fetch loads products for the current page. Results of a fetch that was
// superseded by a later navigation are dropped.
func (s *Session) fetch(ctx context.Context, limit int, category string) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.mu.Unlock()
	s.publish()

	products, err := s.catalog.FetchProducts(ctx, limit, category)

	s.mu.Lock()
	if seq != s.fetchSeq {
		s.mu.Unlock()
		return err
	}
	s.loading = false
	s.products = products
	s.loadErr = err
	s.mu.Unlock()

	s.publish()
	return err
}

func (s *Session) publish() {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	view := s.View()
	for _, fn := range s.subscribers {
		fn(view)
	}
}

func (s *Session) viewLocked() View {
	cartSnapshot := s.cart.Snapshot()

	v := View{
		Location:   s.location,
		Loading:    s.loading,
		LoadErr:    s.loadErr,
		Filter:     s.filter,
		Category:   s.category,
		Categories: append([]model.Category(nil), s.categories...),
		Cart:       cartSnapshot,
		CartTotal:  cart.ComputeTotal(cartSnapshot),
		CartCount:  cartSnapshot.Count(),
		Submitting: s.submitting || s.checkout.InFlight(),
		OrderID:    s.location.Get(ParamOrderID),
	}

	switch s.location.Page {
	case PageCatalog:
		v.Page = listing.DerivePage(s.products, s.filter)
		// Keep the stored page in range so previous/next step from what is shown
		s.filter.CurrentPage = v.Page.CurrentPage
		v.Filter.CurrentPage = v.Page.CurrentPage
	default:
		v.Products = append([]model.Product{}, s.products...)
	}
	return v
}
