package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand palette
var (
	colorLeaf      = color.NRGBA{R: 45, G: 106, B: 79, A: 255}
	colorLeafLight = color.NRGBA{R: 82, G: 183, B: 136, A: 255}
	colorTerracota = color.NRGBA{R: 188, G: 71, B: 73, A: 255}
	colorSand      = color.NRGBA{R: 250, G: 248, B: 243, A: 255}
	colorSoil      = color.NRGBA{R: 20, G: 24, B: 22, A: 255}
)

// StoreTheme is a compact theme in the store colors
type StoreTheme struct{}

// NewStoreTheme creates a new store theme
func NewStoreTheme() fyne.Theme {
	return &StoreTheme{}
}

// Color returns theme colors
func (t *StoreTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		if variant == theme.VariantDark {
			return colorLeafLight
		}
		return colorLeaf
	case theme.ColorNameSuccess:
		return colorLeafLight
	case theme.ColorNameError:
		return colorTerracota
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return colorSoil
		}
		return colorSand
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *StoreTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StoreTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, slightly tighter than the default
func (t *StoreTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
