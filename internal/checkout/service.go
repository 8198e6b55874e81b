package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/floraverde/storefront/internal/model"
)

var (
	// ErrEmptyCart is returned when checking out with nothing in the cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSubmissionInProgress is returned while a previous order is pending
	ErrSubmissionInProgress = errors.New("order submission already in progress")
)

// Service submits orders built from the cart
type Service struct {
	submitter OrderSubmitter
	cart      CartSource
	inFlight  atomic.Bool
	newKey    func() string
}

// NewService creates a new checkout service
func NewService(submitter OrderSubmitter, cart CartSource) *Service {
	return &Service{
		submitter: submitter,
		cart:      cart,
		newKey:    uuid.NewString,
	}
}

// ProceedToCheckout reports whether the checkout page may be opened
func (s *Service) ProceedToCheckout() error {
	if s.cart.Snapshot().IsEmpty() {
		return ErrEmptyCart
	}
	return nil
}

// InFlight reports whether an order is being submitted
func (s *Service) InFlight() bool {
	return s.inFlight.Load()
}

// Submit validates the form, sends the order and clears the cart once the
// backend accepted it. The order is built from a cart snapshot taken before
// the request, and only one submission runs at a time. On any failure the
// cart is left untouched.
func (s *Service) Submit(ctx context.Context, form Form) (model.OrderReceipt, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return model.OrderReceipt{}, ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	snapshot := s.cart.Snapshot()
	if snapshot.IsEmpty() {
		return model.OrderReceipt{}, ErrEmptyCart
	}

	if err := form.Validate(); err != nil {
		return model.OrderReceipt{}, err
	}
	form = form.Normalized()

	order := model.NewOrder(snapshot, form.Name, form.Email, form.Address)
	key := s.newKey()

	receipt, err := s.submitter.CreateOrder(ctx, order, key)
	if err != nil {
		log.Printf("order submission failed (items=%d, total=%d): %v", len(order.Items), order.Total, err)
		return model.OrderReceipt{}, fmt.Errorf("submit order: %w", err)
	}

	s.cart.Clear()
	log.Printf("order %s created (items=%d, total=%d)", receipt.ID, len(order.Items), order.Total)
	return receipt, nil
}
