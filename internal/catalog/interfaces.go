package catalog

import (
	"context"

	"github.com/floraverde/storefront/internal/model"
)

// Source is the backend half of the catalog. backend.Client implements it.
type Source interface {
	ListProducts(ctx context.Context, category string) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// Fetcher defines the interface for the catalog service.
type Fetcher interface {
	FetchProducts(ctx context.Context, limit int, category string) ([]model.Product, error)
	FetchCategories(ctx context.Context) []model.Category
	Lookup(id int) (model.Product, bool)
	Products() []model.Product
}
