package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DeliveryMethod selects how the order reaches the customer
type DeliveryMethod string

const (
	// DeliveryShipping requires a postal address
	DeliveryShipping DeliveryMethod = "shipping"

	// DeliveryPickup means in-store pickup; no address is needed
	DeliveryPickup DeliveryMethod = "pickup"
)

// String returns the string representation of DeliveryMethod
func (dm DeliveryMethod) String() string {
	return string(dm)
}

// RequiresAddress reports whether the address field is mandatory
func (dm DeliveryMethod) RequiresAddress() bool {
	return dm != DeliveryPickup
}

// OrderItem is a single order line as sent to the backend
type OrderItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Order is the purchase request body for POST /api/orders
type Order struct {
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Address       string      `json:"address"`
	Items         []OrderItem `json:"items"`
	Total         int         `json:"total"`
}

// NewOrder builds an order from a cart snapshot and customer fields
func NewOrder(cart Cart, name, email, address string) Order {
	items := make([]OrderItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, OrderItem{ProductID: item.ID, Quantity: item.Quantity})
	}
	return Order{
		CustomerName:  name,
		CustomerEmail: email,
		Address:       address,
		Items:         items,
		Total:         cart.Total(),
	}
}

// OrderID identifies a created order. Backends answer with either a JSON
// number or a string, both are accepted.
type OrderID string

// UnmarshalJSON accepts numeric and string ids
func (id *OrderID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("order id: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*id = OrderID(n.String())
		return nil
	}
	// Some backends encode integer ids as 12.0 or 1.2e3
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return fmt.Errorf("order id %s is not an integer", n)
	}
	*id = OrderID(strconv.FormatInt(int64(f), 10))
	return nil
}

// String returns the string representation of OrderID
func (id OrderID) String() string {
	return string(id)
}

// OrderReceipt is the backend answer to a created order
type OrderReceipt struct {
	ID     OrderID `json:"id"`
	Status string  `json:"status,omitempty"`
}
