package backend

// Package backend is the REST client of the storefront API: product and
// category listings behind a circuit breaker, and order creation. Requests
// are traced through an otelhttp transport.
