package ui

import (
	"context"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/model"
	"github.com/floraverde/storefront/internal/session"
)

type catalogPage struct {
	ui *RootUI

	search         *widget.Entry
	categorySelect *widget.Select
	sortSelect     *widget.Select
	status         *widget.Label
	grid           *fyne.Container
	pagination     *fyne.Container
	root           fyne.CanvasObject

	sortLabels map[string]model.SortKey
	// syncing suppresses widget callbacks while the view is applied
	syncing bool
	// editing reports whether the user is typing in the search entry
	editing func() bool
}

func newCatalogPage(ui *RootUI) *catalogPage {
	l := ui.localization
	p := &catalogPage{ui: ui, sortLabels: make(map[string]model.SortKey)}

	p.search = widget.NewEntry()
	p.search.SetPlaceHolder(l.GetText(KeySearchHint))
	p.search.OnChanged = func(text string) {
		if p.syncing {
			return
		}
		ui.session.SetSearch(text)
	}
	p.editing = func() bool {
		return ui.window != nil && ui.window.Canvas().Focused() == p.search
	}

	p.categorySelect = widget.NewSelect([]string{l.GetText(KeyAllCategories)}, p.onCategoryChanged)

	sortOptions := make([]string, 0, len(model.SortKeys()))
	for _, key := range model.SortKeys() {
		label := l.GetText(sortTextKey(key))
		p.sortLabels[label] = key
		sortOptions = append(sortOptions, label)
	}
	p.sortSelect = widget.NewSelect(sortOptions, func(label string) {
		if p.syncing {
			return
		}
		ui.session.SetSort(p.sortLabels[label])
	})

	p.status = widget.NewLabel("")
	p.status.Wrapping = fyne.TextWrapWord
	p.grid = container.NewGridWithColumns(CatalogColumns)
	p.pagination = container.NewHBox()

	filters := container.NewGridWithColumns(3, p.search, p.categorySelect, p.sortSelect)
	p.root = container.NewBorder(
		filters,
		container.NewCenter(p.pagination),
		nil, nil,
		container.NewVScroll(container.NewVBox(p.status, p.grid)),
	)
	return p
}

func (p *catalogPage) content() fyne.CanvasObject {
	return p.root
}

func (p *catalogPage) onCategoryChanged(label string) {
	if p.syncing {
		return
	}
	category := label
	if label == p.ui.localization.GetText(KeyAllCategories) {
		category = ""
	}
	if category == p.ui.lastView.Category {
		return
	}
	p.ui.dispatch(func(ctx context.Context) error {
		return p.ui.session.SetCategory(ctx, category)
	}, nil)
}

func (p *catalogPage) update(v session.View) {
	l := p.ui.localization

	p.syncing = true
	// Views queued behind a keystroke carry an older term
	if p.search.Text != v.Filter.SearchTerm && !p.editing() {
		p.search.SetText(v.Filter.SearchTerm)
	}

	allLabel := l.GetText(KeyAllCategories)
	options := []string{allLabel}
	for _, c := range v.Categories {
		options = append(options, c.Name)
	}
	// A category from the location may not be in the list yet
	if v.Category != "" && !contains(options, v.Category) {
		options = append(options, v.Category)
	}
	p.categorySelect.Options = options
	selected := v.Category
	if selected == "" {
		selected = allLabel
	}
	if p.categorySelect.Selected != selected {
		p.categorySelect.SetSelected(selected)
	}
	p.categorySelect.Refresh()

	sortLabel := l.GetText(sortTextKey(v.Filter.SortKey))
	if p.sortSelect.Selected != sortLabel {
		p.sortSelect.SetSelected(sortLabel)
	}
	p.syncing = false

	setStatus(p.status, v, len(v.Page.Items), l)
	p.grid.Objects = productCards(p.ui, v.Page.Items)
	p.grid.Refresh()

	p.updatePagination(v)
}

// updatePagination rebuilds previous/next and page buttons. It is hidden
// with a single page.
func (p *catalogPage) updatePagination(v session.View) {
	l := p.ui.localization
	page := v.Page

	if page.TotalPages <= 1 {
		p.pagination.Objects = nil
		p.pagination.Hide()
		return
	}

	prev := widget.NewButton(l.GetText(KeyPrevious), func() { p.ui.session.SetPage(page.CurrentPage - 1) })
	if !page.HasPrevious() {
		prev.Disable()
	}
	next := widget.NewButton(l.GetText(KeyNext), func() { p.ui.session.SetPage(page.CurrentPage + 1) })
	if !page.HasNext() {
		next.Disable()
	}

	objects := []fyne.CanvasObject{prev}
	for i := 1; i <= page.TotalPages; i++ {
		n := i
		btn := widget.NewButton(strconv.Itoa(n), func() { p.ui.session.SetPage(n) })
		if n == page.CurrentPage {
			btn.Importance = widget.HighImportance
		}
		objects = append(objects, btn)
	}
	objects = append(objects, next, widget.NewLabel(PageLabel(page.CurrentPage, page.TotalPages, l)))

	p.pagination.Objects = objects
	p.pagination.Show()
	p.pagination.Refresh()
}

func sortTextKey(key model.SortKey) string {
	switch key {
	case model.SortPriceAsc:
		return KeySortPriceAsc
	case model.SortPriceDesc:
		return KeySortPriceDesc
	case model.SortNameAsc:
		return KeySortNameAsc
	}
	return KeySortNone
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
