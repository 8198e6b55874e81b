package listing

// Package listing derives the visible catalog page from the fetched products
// and the current filter state: search, stable sort, then pagination.
