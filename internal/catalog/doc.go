package catalog

// Package catalog fetches products and categories from the backend and keeps
// the last-fetched product list, which cart actions use for id lookups.
