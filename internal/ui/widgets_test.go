package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/floraverde/storefront/internal/model"
	"github.com/floraverde/storefront/internal/session"
)

func TestProductCardOutOfStock(t *testing.T) {
	test.NewApp()

	added := 0
	card := NewProductCard(model.Product{ID: 3, Name: "Orquídea rosa", Price: 15990, Stock: false},
		NewLocalization(), nil, func(int) { added++ })

	if !card.addBtn.Disabled() {
		t.Error("Add button should be disabled for out-of-stock products")
	}
	if card.stockLabel.Text != "✗ Agotado" {
		t.Errorf("Unexpected stock label: %s", card.stockLabel.Text)
	}
	if card.priceLabel.Text != "$15.990" {
		t.Errorf("Unexpected price label: %s", card.priceLabel.Text)
	}

	test.Tap(card.addBtn)
	if added != 0 {
		t.Error("Tapping a disabled button must not add to the cart")
	}
}

func TestProductCardAdd(t *testing.T) {
	test.NewApp()

	var got int
	card := NewProductCard(model.Product{ID: 7, Name: "Cactus", Price: 500, Stock: true},
		NewLocalization(), nil, func(id int) { got = id })

	if card.addBtn.Disabled() {
		t.Fatal("Add button should be enabled for products in stock")
	}
	test.Tap(card.addBtn)
	if got != 7 {
		t.Errorf("Expected product 7 to be added, got %d", got)
	}
}

func TestCartRowCallbacks(t *testing.T) {
	test.NewApp()

	item := model.CartItem{Product: model.Product{ID: 2, Name: "Cactus", Price: 5000}, Quantity: 3}
	var deltas []int
	removed := 0
	row := NewCartRow(item, func(id, delta int) {
		if id != 2 {
			t.Errorf("Unexpected product id %d", id)
		}
		deltas = append(deltas, delta)
	}, func(id int) { removed = id })

	if row.subtotalLabel.Text != "$15.000" {
		t.Errorf("Unexpected subtotal: %s", row.subtotalLabel.Text)
	}

	test.Tap(row.plusBtn)
	test.Tap(row.minusBtn)
	test.Tap(row.removeBtn)

	if len(deltas) != 2 || deltas[0] != 1 || deltas[1] != -1 {
		t.Errorf("Unexpected quantity deltas: %v", deltas)
	}
	if removed != 2 {
		t.Errorf("Expected product 2 to be removed, got %d", removed)
	}
}

func TestValidateTimeout(t *testing.T) {
	valid := []string{"", "10", " 120 ", "1"}
	for _, v := range valid {
		if err := validateTimeout(v); err != nil {
			t.Errorf("validateTimeout(%q) returned %v", v, err)
		}
	}

	invalid := []string{"0", "121", "ten", "-5"}
	for _, v := range invalid {
		if err := validateTimeout(v); err == nil {
			t.Errorf("validateTimeout(%q) should fail", v)
		}
	}
}

func TestCatalogSearchKeepsTypedText(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	ui := &RootUI{window: w, localization: NewLocalization()}
	page := newCatalogPage(ui)
	w.SetContent(page.content())

	page.syncing = true
	page.search.SetText("rosa")
	page.syncing = false
	w.Canvas().Focus(page.search)

	stale := session.View{Filter: model.FilterState{SearchTerm: "ro", CurrentPage: 1}}
	page.update(stale)
	if page.search.Text != "rosa" {
		t.Errorf("Search text = %q while typing, expected %q", page.search.Text, "rosa")
	}

	w.Canvas().Unfocus()
	page.update(stale)
	if page.search.Text != "ro" {
		t.Errorf("Search text = %q after focus left, expected %q", page.search.Text, "ro")
	}
}
