package checkout

// Package checkout validates the checkout form, builds the order from a cart
// snapshot and submits it once at a time. The cart is cleared only after the
// backend accepted the order.
