package cart

// Package cart holds the shopping cart: the persistent store that survives
// restarts and the mutation service that keeps one line per product with a
// positive quantity.
