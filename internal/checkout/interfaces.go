package checkout

import (
	"context"

	"github.com/floraverde/storefront/internal/model"
)

// OrderSubmitter sends orders to the backend. backend.Client implements it.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, order model.Order, idempotencyKey string) (model.OrderReceipt, error)
}

// CartSource is the part of the cart service checkout needs
type CartSource interface {
	Snapshot() model.Cart
	Clear()
}
