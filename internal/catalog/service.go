package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/floraverde/storefront/internal/model"
)

// Service fetches the catalog and remembers the last successful product list
type Service struct {
	source Source

	mu       sync.RWMutex
	products []model.Product
	byID     map[int]int
}

// NewService creates a new catalog service
func NewService(source Source) *Service {
	return &Service{
		source: source,
		byID:   make(map[int]int),
	}
}

// FetchProducts loads products, filtered server-side by category when it is
// not empty. A positive limit keeps only the first limit products of the
// result; the full list still becomes the last-fetched catalog.
//
// On failure it returns an empty non-nil slice and the error, and the
// last-fetched catalog is left as it was.
func (s *Service) FetchProducts(ctx context.Context, limit int, category string) ([]model.Product, error) {
	products, err := s.source.ListProducts(ctx, category)
	if err != nil {
		log.Printf("failed to fetch products (category=%q): %v", category, err)
		return []model.Product{}, fmt.Errorf("fetch products: %w", err)
	}

	s.remember(products)

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	out := make([]model.Product, len(products))
	copy(out, products)
	return out, nil
}

// FetchCategories loads all categories. Failures are logged and yield an
// empty list so pages stay usable without the category filter.
func (s *Service) FetchCategories(ctx context.Context) []model.Category {
	categories, err := s.source.ListCategories(ctx)
	if err != nil {
		log.Printf("failed to fetch categories: %v", err)
		return []model.Category{}
	}
	return categories
}

// Lookup finds a product by id in the last-fetched catalog
func (s *Service) Lookup(id int) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return s.products[idx], true
}

// Products returns a copy of the last-fetched catalog
func (s *Service) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) remember(products []model.Product) {
	stored := make([]model.Product, len(products))
	copy(stored, products)

	byID := make(map[int]int, len(stored))
	for i, p := range stored {
		if _, dup := byID[p.ID]; !dup {
			byID[p.ID] = i
		}
	}

	s.mu.Lock()
	s.products = stored
	s.byID = byID
	s.mu.Unlock()
}
