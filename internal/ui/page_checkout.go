package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/checkout"
	"github.com/floraverde/storefront/internal/model"
	"github.com/floraverde/storefront/internal/session"
)

type checkoutPage struct {
	ui *RootUI

	nameEntry    *widget.Entry
	emailEntry   *widget.Entry
	addressEntry *widget.Entry
	addressBox   *fyne.Container
	delivery     *widget.RadioGroup
	submitBtn    *widget.Button
	lines        *fyne.Container
	totalLabel   *widget.Label
	root         fyne.CanvasObject

	deliveryLabels map[string]model.DeliveryMethod
}

func newCheckoutPage(ui *RootUI) *checkoutPage {
	l := ui.localization
	p := &checkoutPage{
		ui: ui,
		deliveryLabels: map[string]model.DeliveryMethod{
			l.GetText(KeyShipping): model.DeliveryShipping,
			l.GetText(KeyPickup):   model.DeliveryPickup,
		},
	}

	p.nameEntry = widget.NewEntry()
	p.emailEntry = widget.NewEntry()
	p.addressEntry = widget.NewEntry()
	p.addressBox = container.NewVBox(widget.NewLabel(l.GetText(KeyAddress)), p.addressEntry)

	p.delivery = widget.NewRadioGroup([]string{l.GetText(KeyShipping), l.GetText(KeyPickup)}, p.onDeliveryChanged)
	p.delivery.Horizontal = true
	p.delivery.Required = true

	p.submitBtn = widget.NewButton(l.GetText(KeyPlaceOrder), p.onSubmit)
	p.submitBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyName)), p.nameEntry,
		widget.NewLabel(l.GetText(KeyEmail)), p.emailEntry,
		widget.NewLabel(l.GetText(KeyDelivery)), p.delivery,
		p.addressBox,
		p.submitBtn,
	)

	p.lines = container.NewVBox()
	p.totalLabel = widget.NewLabel("")
	p.totalLabel.TextStyle = fyne.TextStyle{Bold: true}
	summaryTitle := widget.NewLabel(l.GetText(KeyOrderSummary))
	summaryTitle.TextStyle = fyne.TextStyle{Bold: true}
	summary := widget.NewCard("", "", container.NewVBox(
		summaryTitle,
		p.lines,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeyTotal)), p.totalLabel),
	))

	title := widget.NewLabel(l.GetText(KeyCheckoutTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	p.root = container.NewVScroll(container.NewBorder(title, nil, nil, summary, form))

	p.setDelivery(ui.settings.GetDeliveryMethod())
	return p
}

func (p *checkoutPage) content() fyne.CanvasObject {
	return p.root
}

func (p *checkoutPage) setDelivery(method model.DeliveryMethod) {
	for label, m := range p.deliveryLabels {
		if m == method {
			p.delivery.SetSelected(label)
			return
		}
	}
}

func (p *checkoutPage) selectedDelivery() model.DeliveryMethod {
	if method, ok := p.deliveryLabels[p.delivery.Selected]; ok {
		return method
	}
	return model.DeliveryShipping
}

// onDeliveryChanged hides the address for store pickup
func (p *checkoutPage) onDeliveryChanged(string) {
	method := p.selectedDelivery()
	if method.RequiresAddress() {
		p.addressBox.Show()
	} else {
		p.addressBox.Hide()
	}
	p.ui.settings.SetDeliveryMethod(method)
}

func (p *checkoutPage) onSubmit() {
	l := p.ui.localization
	form := checkout.Form{
		Name:     p.nameEntry.Text,
		Email:    p.emailEntry.Text,
		Address:  p.addressEntry.Text,
		Delivery: p.selectedDelivery(),
	}

	p.submitBtn.Disable()
	p.submitBtn.SetText(l.GetText(KeyProcessing))

	p.ui.dispatch(func(ctx context.Context) error {
		_, err := p.ui.session.SubmitOrder(ctx, form)
		if err == nil {
			fyne.Do(p.resetForm)
		}
		return err
	}, func(err error) {
		p.submitBtn.SetText(l.GetText(KeyPlaceOrder))
		p.submitBtn.Enable()
		title, message := p.ui.submitErrorMessage(err)
		p.ui.showMessage(title, message)
	})
}

func (p *checkoutPage) resetForm() {
	p.nameEntry.SetText("")
	p.emailEntry.SetText("")
	p.addressEntry.SetText("")
	p.submitBtn.SetText(p.ui.localization.GetText(KeyPlaceOrder))
	p.submitBtn.Enable()
}

func (p *checkoutPage) update(v session.View) {
	lines := make([]fyne.CanvasObject, 0, len(v.Cart))
	for _, item := range v.Cart {
		lines = append(lines, container.NewBorder(nil, nil,
			widget.NewLabel(formatQuantity(item)),
			widget.NewLabel(FormatPrice(item.Subtotal())),
		))
	}
	p.lines.Objects = lines
	p.lines.Refresh()
	p.totalLabel.SetText(FormatPrice(v.CartTotal))

	if v.Submitting {
		p.submitBtn.Disable()
		p.submitBtn.SetText(p.ui.localization.GetText(KeyProcessing))
	}
}
