package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/model"
)

// CartRow is a cart line with quantity controls and a remove button
type CartRow struct {
	widget.BaseWidget

	item model.CartItem

	nameLabel     *widget.Label
	categoryLabel *widget.Label
	quantityLabel *widget.Label
	subtotalLabel *widget.Label
	minusBtn      *widget.Button
	plusBtn       *widget.Button
	removeBtn     *widget.Button

	onQuantity func(productID, delta int)
	onRemove   func(productID int)
}

// NewCartRow creates a row for item
func NewCartRow(item model.CartItem, onQuantity func(productID, delta int), onRemove func(productID int)) *CartRow {
	cr := &CartRow{
		item:       item,
		onQuantity: onQuantity,
		onRemove:   onRemove,
	}
	cr.ExtendBaseWidget(cr)

	cr.nameLabel = widget.NewLabel(item.Name)
	cr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	cr.categoryLabel = widget.NewLabel(item.Category)
	cr.categoryLabel.Importance = widget.LowImportance
	cr.quantityLabel = widget.NewLabel(strconv.Itoa(item.Quantity))
	cr.subtotalLabel = widget.NewLabel(FormatPrice(item.Subtotal()))
	cr.subtotalLabel.TextStyle = fyne.TextStyle{Bold: true}

	cr.minusBtn = widget.NewButton(IconMinus, func() { cr.changeQuantity(-1) })
	cr.plusBtn = widget.NewButton(IconPlus, func() { cr.changeQuantity(1) })
	cr.removeBtn = widget.NewButton(IconRemove, func() {
		if cr.onRemove != nil {
			cr.onRemove(cr.item.ID)
		}
	})
	cr.removeBtn.Importance = widget.DangerImportance

	return cr
}

func (cr *CartRow) changeQuantity(delta int) {
	if cr.onQuantity != nil {
		cr.onQuantity(cr.item.ID, delta)
	}
}

// CreateRenderer creates the widget renderer
func (cr *CartRow) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, cr.removeBtn, cr.nameLabel)
	controls := container.NewHBox(cr.minusBtn, cr.quantityLabel, cr.plusBtn)
	footer := container.NewBorder(nil, nil, controls, cr.subtotalLabel)

	return widget.NewSimpleRenderer(container.NewVBox(
		header,
		cr.categoryLabel,
		footer,
		widget.NewSeparator(),
	))
}
