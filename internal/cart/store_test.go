package cart

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/floraverde/storefront/internal/model"
)

func sampleCart() model.Cart {
	return model.Cart{
		{Product: model.Product{ID: 1, Name: "Rosa roja", Price: 1000, Stock: true, ImageURL: "https://img/rosa.jpg"}, Quantity: 2},
		{Product: model.Product{ID: 7, Name: "Cactus", Price: 500, Category: "Suculentas", CategoryID: 3}, Quantity: 1},
	}
}

func TestPreferencesStoreRoundTrip(t *testing.T) {
	app := test.NewApp()
	store := NewPreferencesStore(app.Preferences())

	cart := sampleCart()
	store.Save(cart)

	assert.Equal(t, cart, store.Load())
	assert.Contains(t, app.Preferences().String(PreferencesKey), `"quantity":2`)
}

func TestPreferencesStoreEmpty(t *testing.T) {
	app := test.NewApp()
	store := NewPreferencesStore(app.Preferences())

	cart := store.Load()
	assert.NotNil(t, cart)
	assert.Empty(t, cart)

	store.Save(nil)
	assert.Equal(t, "[]", app.Preferences().String(PreferencesKey))
	assert.Empty(t, store.Load())
}

func TestPreferencesStoreCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Cart
	}{
		{"not json", "{{{", model.Cart{}},
		{"wrong shape", `{"id": 1}`, model.Cart{}},
		{"null", "null", model.Cart{}},
		{
			"invalid lines dropped",
			`[{"id":1,"price":100,"quantity":0},{"id":2,"price":200,"quantity":3},{"id":2,"price":200,"quantity":5}]`,
			model.Cart{{Product: model.Product{ID: 2, Price: 200}, Quantity: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := test.NewApp()
			app.Preferences().SetString(PreferencesKey, tt.raw)

			store := NewPreferencesStore(app.Preferences())
			assert.Equal(t, tt.want, store.Load())
		})
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	assert.Empty(t, store.Load())

	cart := sampleCart()
	store.Save(cart)
	assert.Equal(t, cart, store.Load())

	store.SetRaw([]byte("garbage"))
	assert.Equal(t, model.Cart{}, store.Load())
}
