package model

// CartItem is a product line in the cart. It serializes as the flattened
// product fields plus quantity, which is the stored cart format.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price times quantity for the line
func (ci CartItem) Subtotal() int {
	return ci.Price * ci.Quantity
}

// Cart is the ordered list of cart lines. At most one line per product id,
// and every persisted line has Quantity >= 1.
type Cart []CartItem

// Total returns the sum of all line subtotals. It is always derived from the
// lines and never cached.
func (c Cart) Total() int {
	total := 0
	for _, item := range c {
		total += item.Subtotal()
	}
	return total
}

// Count returns the number of units in the cart (badge value)
func (c Cart) Count() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// IndexOf returns the position of the line for productID, or -1
func (c Cart) IndexOf(productID int) int {
	for i, item := range c {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with c
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Normalize drops lines with a non-positive quantity and repeated product ids
// (first occurrence wins). It is applied to data read back from storage.
func (c Cart) Normalize() Cart {
	out := make(Cart, 0, len(c))
	seen := make(map[int]struct{}, len(c))
	for _, item := range c {
		if item.Quantity <= 0 {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
