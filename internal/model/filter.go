package model

// SortKey selects the ordering of the catalog listing
type SortKey string

const (
	// SortNone keeps the order in which the backend returned products
	SortNone SortKey = "none"

	// SortPriceAsc orders by price, cheapest first
	SortPriceAsc SortKey = "price-asc"

	// SortPriceDesc orders by price, most expensive first
	SortPriceDesc SortKey = "price-desc"

	// SortNameAsc orders by name using locale collation
	SortNameAsc SortKey = "name-asc"
)

// String returns the string representation of SortKey
func (sk SortKey) String() string {
	return string(sk)
}

// IsValid returns true for the known sort keys
func (sk SortKey) IsValid() bool {
	switch sk {
	case SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	}
	return false
}

// ParseSortKey maps a select value to a SortKey. Empty and unknown values
// fall back to SortNone.
func ParseSortKey(value string) SortKey {
	sk := SortKey(value)
	if sk.IsValid() {
		return sk
	}
	return SortNone
}

// SortKeys returns the selectable sort keys in display order
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc}
}

// FilterState is the transient catalog view state. It is never persisted.
type FilterState struct {
	SearchTerm  string
	SortKey     SortKey
	CurrentPage int
}

// NewFilterState returns the initial state: no search, fetch order, page 1
func NewFilterState() FilterState {
	return FilterState{SortKey: SortNone, CurrentPage: 1}
}
