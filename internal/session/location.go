package session

import (
	"net/url"
	"strings"
)

// Page identifies a storefront screen
type Page string

const (
	PageHome     Page = "home"
	PageCatalog  Page = "catalog"
	PageCart     Page = "cart"
	PageCheckout Page = "checkout"
	PageThankYou Page = "thank-you"
)

// Query parameters understood by the pages
const (
	ParamCategory = "category"
	ParamOrderID  = "orderId"
)

// IsValid returns true for the known pages
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageCatalog, PageCart, PageCheckout, PageThankYou:
		return true
	}
	return false
}

// Location is the address of the current screen, "page?query"
type Location struct {
	Page  Page
	query url.Values
}

// NewLocation creates a location without query parameters
func NewLocation(page Page) Location {
	if !page.IsValid() {
		page = PageHome
	}
	return Location{Page: page}
}

// ParseLocation parses "catalog?category=Interior". A leading slash is
// ignored, unknown or empty pages resolve to home and a malformed query is
// dropped.
func ParseLocation(raw string) Location {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "/")

	path, rawQuery, _ := strings.Cut(raw, "?")
	loc := NewLocation(Page(path))

	if rawQuery != "" {
		if query, err := url.ParseQuery(rawQuery); err == nil && len(query) > 0 {
			loc.query = query
		}
	}
	return loc
}

// Get returns the first value of the query parameter
func (l Location) Get(key string) string {
	return l.query.Get(key)
}

// With returns a copy of the location with the parameter set, or removed
// when value is empty
func (l Location) With(key, value string) Location {
	query := url.Values{}
	for k, v := range l.query {
		query[k] = append([]string(nil), v...)
	}
	if value == "" {
		query.Del(key)
	} else {
		query.Set(key, value)
	}
	if len(query) == 0 {
		query = nil
	}
	return Location{Page: l.Page, query: query}
}

// String formats the location as "page" or "page?query"
func (l Location) String() string {
	page := l.Page
	if page == "" {
		page = PageHome
	}
	if len(l.query) == 0 {
		return string(page)
	}
	return string(page) + "?" + l.query.Encode()
}
