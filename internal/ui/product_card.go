package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/model"
)

// ProductCard shows one product with its price, care hints, stock and an
// add-to-cart button that is disabled when the product is out of stock
type ProductCard struct {
	widget.BaseWidget

	product      model.Product
	localization *Localization

	image      *canvas.Image
	nameLabel  *widget.Label
	descLabel  *widget.Label
	careLabel  *widget.Label
	priceLabel *widget.Label
	stockLabel *widget.Label
	addBtn     *widget.Button

	onAdd func(productID int)
}

// NewProductCard creates a card. images may be nil, in which case no
// picture is loaded.
func NewProductCard(product model.Product, localization *Localization, images *ImageLoader, onAdd func(productID int)) *ProductCard {
	pc := &ProductCard{
		product:      product,
		localization: localization,
		onAdd:        onAdd,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	if images != nil {
		images.Load(pc.image, product.ImageURL)
	}
	return pc
}

// Product returns the product shown by the card
func (pc *ProductCard) Product() model.Product {
	return pc.product
}

func (pc *ProductCard) createUI() {
	p := pc.product
	l := pc.localization

	pc.image = canvas.NewImageFromResource(nil)
	pc.image.FillMode = canvas.ImageFillContain
	pc.image.SetMinSize(fyne.NewSize(CardWidth, CardImageHeight))

	pc.nameLabel = widget.NewLabel(p.Name)
	pc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	pc.descLabel = widget.NewLabel(p.Description)
	pc.descLabel.Wrapping = fyne.TextWrapWord

	pc.careLabel = widget.NewLabel(fmt.Sprintf("%s %s: %s%s%s %s: %s",
		IconWater, l.GetText(KeyWatering), p.Watering,
		MiddleDotSeparator,
		IconSun, l.GetText(KeyLight), p.Light))
	pc.careLabel.Wrapping = fyne.TextWrapWord
	pc.careLabel.SizeName = theme.SizeNameCaptionText

	pc.priceLabel = widget.NewLabel(FormatPrice(p.Price))
	pc.priceLabel.TextStyle = fyne.TextStyle{Bold: true}

	pc.stockLabel = widget.NewLabel(StockLabel(p.InStock(), l))
	pc.stockLabel.Importance = widget.SuccessImportance
	if !p.InStock() {
		pc.stockLabel.Importance = widget.DangerImportance
	}

	pc.addBtn = widget.NewButton(l.GetText(KeyAddToCart), func() {
		if pc.onAdd != nil {
			pc.onAdd(pc.product.ID)
		}
	})
	pc.addBtn.Importance = widget.HighImportance
	if !p.InStock() {
		pc.addBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (pc *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.Transparent)
	background.StrokeColor = color.NRGBA{R: 0, G: 0, B: 0, A: 30}
	background.StrokeWidth = 1
	background.CornerRadius = 8
	background.SetMinSize(fyne.NewSize(CardWidth, CardMinHeight))

	footer := container.NewBorder(nil, nil, pc.priceLabel, pc.stockLabel)
	body := container.NewBorder(
		container.NewVBox(pc.image, pc.nameLabel),
		container.NewVBox(pc.careLabel, footer, pc.addBtn),
		nil, nil,
		pc.descLabel,
	)

	return widget.NewSimpleRenderer(container.NewStack(background, container.NewPadded(body)))
}
