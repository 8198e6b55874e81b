package session

import (
	"context"

	"github.com/floraverde/storefront/internal/checkout"
	"github.com/floraverde/storefront/internal/model"
)

// Checkout is the order submission the session dispatches to.
// checkout.Service implements it.
type Checkout interface {
	ProceedToCheckout() error
	Submit(ctx context.Context, form checkout.Form) (model.OrderReceipt, error)
	InFlight() bool
}
