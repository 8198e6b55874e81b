package session

// Package session is the single state container of the storefront. It owns
// the current location, the catalog filter state, the selected category and
// the fetched products, dispatches every user command and publishes a fresh
// View to subscribers after each change.
