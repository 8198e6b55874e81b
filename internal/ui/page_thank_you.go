package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/session"
)

type thankYouPage struct {
	ui         *RootUI
	orderLabel *widget.Label
	root       fyne.CanvasObject
}

func newThankYouPage(ui *RootUI) *thankYouPage {
	l := ui.localization
	p := &thankYouPage{ui: ui}

	title := widget.NewLabel(l.GetText(KeyThankYouTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	message := widget.NewLabel(l.GetText(KeyThankYouMessage))
	message.Alignment = fyne.TextAlignCenter

	p.orderLabel = widget.NewLabel("")
	p.orderLabel.Alignment = fyne.TextAlignCenter

	homeBtn := widget.NewButton(l.GetText(KeyBackToHome), func() {
		ui.navigate(session.NewLocation(session.PageHome))
	})
	homeBtn.Importance = widget.HighImportance

	p.root = container.NewCenter(container.NewVBox(title, message, p.orderLabel, homeBtn))
	return p
}

func (p *thankYouPage) content() fyne.CanvasObject {
	return p.root
}

func (p *thankYouPage) update(v session.View) {
	if v.OrderID == "" {
		p.orderLabel.Hide()
		return
	}
	p.orderLabel.SetText(fmt.Sprintf(p.ui.localization.GetText(KeyOrderNumber), v.OrderID))
	p.orderLabel.Show()
}
