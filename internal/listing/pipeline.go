package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/floraverde/storefront/internal/model"
)

// PageSize is the number of products per catalog page
const PageSize = 9

// Page is one page of the filtered and sorted catalog
type Page struct {
	Items       []model.Product
	TotalPages  int
	CurrentPage int
	TotalItems  int
}

// HasPrevious reports whether a previous page exists
func (p Page) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a next page exists
func (p Page) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// DerivePage filters, sorts and paginates products. The input slice is never
// modified. The requested page is clamped into [1, TotalPages]; with no
// matching products the page is 1 and TotalPages is 0.
func DerivePage(products []model.Product, state model.FilterState) Page {
	filtered := Filter(products, state.SearchTerm)
	Sort(filtered, state.SortKey)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	current := ClampPage(state.CurrentPage, totalPages)

	start := (current - 1) * PageSize
	end := min(start+PageSize, total)

	items := make([]model.Product, 0, end-start)
	if start < end {
		items = append(items, filtered[start:end]...)
	}

	return Page{
		Items:       items,
		TotalPages:  totalPages,
		CurrentPage: current,
		TotalItems:  total,
	}
}

// ClampPage keeps page within [1, totalPages], or 1 when there are no pages
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Filter returns a new slice with the products whose name or description
// contains term, ignoring case. An empty term keeps everything.
func Filter(products []model.Product, term string) []model.Product {
	out := make([]model.Product, 0, len(products))
	if term == "" {
		return append(out, products...)
	}

	fold := cases.Fold()
	needle := fold.String(term)
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders products in place. Equal elements keep their relative order;
// SortNone leaves the slice untouched.
func Sort(products []model.Product, key model.SortKey) {
	switch key {
	case model.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case model.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case model.SortNameAsc:
		col := collate.New(language.Spanish)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
