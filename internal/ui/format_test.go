package ui

import (
	"testing"

	"github.com/floraverde/storefront/internal/session"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "$0"},
		{500, "$500"},
		{15990, "$15.990"},
		{129990, "$129.990"},
		{1234567, "$1.234.567"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.amount); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestBreadcrumb(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		page session.Page
		want string
	}{
		{session.PageHome, ""},
		{session.PageCatalog, "Inicio › Catálogo"},
		{session.PageCart, "Inicio › Mi Carrito"},
		{session.PageCheckout, "Inicio › Mi Carrito › Checkout"},
	}

	for _, tt := range tests {
		if got := Breadcrumb(tt.page, l); got != tt.want {
			t.Errorf("Breadcrumb(%s) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestStockAndPageLabels(t *testing.T) {
	l := NewLocalization()

	if got := StockLabel(true, l); got != "✓ En stock" {
		t.Errorf("Unexpected in-stock label: %s", got)
	}
	if got := StockLabel(false, l); got != "✗ Agotado" {
		t.Errorf("Unexpected out-of-stock label: %s", got)
	}
	if got := PageLabel(2, 3, l); got != "Página 2 de 3" {
		t.Errorf("Unexpected page label: %s", got)
	}

	l.SetLanguage("en")
	if got := CartButtonText(4, l); got != "🛒 Cart (4)" {
		t.Errorf("Unexpected cart button text: %s", got)
	}
}
