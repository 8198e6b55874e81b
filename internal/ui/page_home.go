package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/model"
	"github.com/floraverde/storefront/internal/session"
)

type homePage struct {
	ui     *RootUI
	status *widget.Label
	grid   *fyne.Container
	root   fyne.CanvasObject
}

func newHomePage(ui *RootUI) *homePage {
	l := ui.localization
	p := &homePage{ui: ui}

	heading := widget.NewLabel(l.GetText(KeyFeatured))
	heading.SizeName = theme.SizeNameSubHeadingText
	heading.TextStyle = fyne.TextStyle{Bold: true}

	p.status = widget.NewLabel("")
	p.status.Wrapping = fyne.TextWrapWord
	p.grid = container.NewGridWithColumns(FeaturedColumns)

	catalogBtn := widget.NewButton(l.GetText(KeyViewCatalog), func() {
		ui.navigate(session.NewLocation(session.PageCatalog))
	})

	p.root = container.NewVScroll(container.NewVBox(
		heading,
		p.status,
		p.grid,
		container.NewCenter(catalogBtn),
	))
	return p
}

func (p *homePage) content() fyne.CanvasObject {
	return p.root
}

func (p *homePage) update(v session.View) {
	setStatus(p.status, v, len(v.Products), p.ui.localization)
	p.grid.Objects = productCards(p.ui, v.Products)
	p.grid.Refresh()
}

// productCards builds one card per product
func productCards(ui *RootUI, products []model.Product) []fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(products))
	for _, product := range products {
		cards = append(cards, NewProductCard(product, ui.localization, ui.images, ui.addToCart))
	}
	return cards
}

// setStatus shows loading, the load error or the empty-result notice in
// place of a product grid
func setStatus(status *widget.Label, v session.View, shown int, l *Localization) {
	switch {
	case v.Loading:
		status.SetText(l.GetText(KeyLoading))
		status.Importance = widget.MediumImportance
	case v.LoadErr != nil:
		status.SetText(l.GetText(KeyLoadFailed))
		status.Importance = widget.DangerImportance
	case shown == 0:
		status.SetText(l.GetText(KeyNoResults))
		status.Importance = widget.MediumImportance
	default:
		status.Hide()
		return
	}
	status.Show()
	status.Refresh()
}
