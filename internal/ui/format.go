package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/floraverde/storefront/internal/model"
	"github.com/floraverde/storefront/internal/session"
)

// Prices are always shown in Chilean format regardless of UI language
var priceLocale = language.MustParse("es-CL")

// FormatPrice renders whole pesos as "$15.990"
func FormatPrice(amount int) string {
	p := message.NewPrinter(priceLocale)
	if amount < 0 {
		return "-$" + p.Sprintf("%d", -amount)
	}
	return "$" + p.Sprintf("%d", amount)
}

// Breadcrumb returns the navigation trail for a page
func Breadcrumb(page session.Page, l *Localization) string {
	parts := []string{l.GetText(KeyNavHome)}
	switch page {
	case session.PageCatalog:
		parts = append(parts, l.GetText(KeyNavCatalog))
	case session.PageCart:
		parts = append(parts, l.GetText(KeyCartTitle))
	case session.PageCheckout:
		parts = append(parts, l.GetText(KeyCartTitle), l.GetText(KeyNavCheckout))
	case session.PageThankYou:
		parts = append(parts, l.GetText(KeyThankYouTitle))
	default:
		return ""
	}
	return strings.Join(parts, BreadcrumbSeparator)
}

// StockLabel returns the availability text of a product
func StockLabel(inStock bool, l *Localization) string {
	if inStock {
		return l.GetText(KeyInStock)
	}
	return l.GetText(KeyOutOfStock)
}

// PageLabel returns "Página 2 de 3"
func PageLabel(current, total int, l *Localization) string {
	return fmt.Sprintf(l.GetText(KeyPageOf), current, total)
}

// CartButtonText returns the header cart button with the badge count
func CartButtonText(count int, l *Localization) string {
	return fmt.Sprintf("%s %s (%d)", IconCart, l.GetText(KeyNavCart), count)
}

// formatQuantity renders a summary line such as "2x Rosa roja"
func formatQuantity(item model.CartItem) string {
	return fmt.Sprintf(QuantityFormat, item.Quantity, item.Name)
}
