package cart

import (
	"encoding/json"
	"log"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/floraverde/storefront/internal/model"
)

// PreferencesKey is the preferences entry that holds the serialized cart
const PreferencesKey = "cart"

// PreferencesStore keeps the cart as JSON in the app preferences
type PreferencesStore struct {
	prefs fyne.Preferences
	key   string
}

// NewPreferencesStore creates a store on the given preferences
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs, key: PreferencesKey}
}

// Load reads the stored cart. Missing or malformed data yields an empty cart.
func (s *PreferencesStore) Load() model.Cart {
	raw := s.prefs.String(s.key)
	if raw == "" {
		return model.Cart{}
	}
	return decodeCart([]byte(raw))
}

// Save serializes the cart into preferences
func (s *PreferencesStore) Save(cart model.Cart) {
	data, err := encodeCart(cart)
	if err != nil {
		log.Printf("failed to encode cart: %v", err)
		return
	}
	s.prefs.SetString(s.key, string(data))
}

// MemoryStore keeps the serialized cart in memory. It behaves like the
// preferences store, including the JSON round trip.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored cart or an empty cart
func (s *MemoryStore) Load() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data) == 0 {
		return model.Cart{}
	}
	return decodeCart(s.data)
}

// Save stores the serialized cart
func (s *MemoryStore) Save(cart model.Cart) {
	data, err := encodeCart(cart)
	if err != nil {
		log.Printf("failed to encode cart: %v", err)
		return
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// SetRaw replaces the stored bytes, e.g. to simulate a corrupted entry
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	s.data = append([]byte(nil), data...)
	s.mu.Unlock()
}

func encodeCart(cart model.Cart) ([]byte, error) {
	if cart == nil {
		cart = model.Cart{}
	}
	return json.Marshal(cart)
}

func decodeCart(data []byte) model.Cart {
	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		log.Printf("discarding unreadable stored cart: %v", err)
		return model.Cart{}
	}
	return cart.Normalize()
}
