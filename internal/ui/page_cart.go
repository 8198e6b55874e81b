package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/session"
)

type cartPage struct {
	ui *RootUI

	items         *fyne.Container
	emptyBox      *fyne.Container
	actions       *fyne.Container
	subtotalLabel *widget.Label
	totalLabel    *widget.Label
	checkoutBtn   *widget.Button
	suggestStatus *widget.Label
	suggestions   *fyne.Container
	root          fyne.CanvasObject
}

func newCartPage(ui *RootUI) *cartPage {
	l := ui.localization
	p := &cartPage{ui: ui}

	toCatalog := func() { ui.navigate(session.NewLocation(session.PageCatalog)) }

	p.items = container.NewVBox()
	p.emptyBox = container.NewHBox(
		widget.NewLabel(l.GetText(KeyCartEmpty)),
		widget.NewButton(l.GetText(KeyGoToCatalog), toCatalog),
	)

	clearBtn := widget.NewButton(l.GetText(KeyClearCart), ui.session.ClearCart)
	p.actions = container.NewBorder(nil, nil,
		widget.NewButton(l.GetText(KeyContinueShopping), toCatalog),
		clearBtn,
	)

	p.subtotalLabel = widget.NewLabel("")
	p.totalLabel = widget.NewLabel("")
	p.totalLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.checkoutBtn = widget.NewButton(l.GetText(KeyProceedCheckout), ui.proceedToCheckout)
	p.checkoutBtn.Importance = widget.HighImportance

	summaryTitle := widget.NewLabel(l.GetText(KeyOrderSummary))
	summaryTitle.TextStyle = fyne.TextStyle{Bold: true}
	summary := widget.NewCard("", "", container.NewVBox(
		summaryTitle,
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeySubtotal)), p.subtotalLabel),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeyTotal)), p.totalLabel),
		p.checkoutBtn,
	))

	suggestTitle := widget.NewLabel(l.GetText(KeyYouMayLike))
	suggestTitle.TextStyle = fyne.TextStyle{Bold: true}
	p.suggestStatus = widget.NewLabel("")
	p.suggestions = container.NewGridWithColumns(session.SuggestionCount)

	left := container.NewVBox(p.emptyBox, p.items, p.actions)
	body := container.NewBorder(nil, nil, nil, summary, left)

	p.root = container.NewVScroll(container.NewVBox(
		body,
		widget.NewSeparator(),
		suggestTitle,
		p.suggestStatus,
		p.suggestions,
	))
	return p
}

func (p *cartPage) content() fyne.CanvasObject {
	return p.root
}

func (p *cartPage) update(v session.View) {
	rows := make([]fyne.CanvasObject, 0, len(v.Cart))
	for _, item := range v.Cart {
		rows = append(rows, NewCartRow(item, p.ui.session.UpdateQuantity, p.ui.session.RemoveFromCart))
	}
	p.items.Objects = rows
	p.items.Refresh()

	if v.Cart.IsEmpty() {
		p.emptyBox.Show()
		p.actions.Hide()
	} else {
		p.emptyBox.Hide()
		p.actions.Show()
	}

	p.subtotalLabel.SetText(FormatPrice(v.CartTotal))
	p.totalLabel.SetText(FormatPrice(v.CartTotal))

	setStatus(p.suggestStatus, v, len(v.Products), p.ui.localization)
	p.suggestions.Objects = productCards(p.ui, v.Products)
	p.suggestions.Refresh()
}
