package ui

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/checkout"
	"github.com/floraverde/storefront/internal/config"
	"github.com/floraverde/storefront/internal/session"
)

// pageView is one screen of the storefront. update is called on the UI
// thread with every published view while the page is shown.
type pageView interface {
	content() fyne.CanvasObject
	update(v session.View)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	session      *session.Session
	settings     *config.Settings
	localization *Localization
	images       *ImageLoader
	timeout      time.Duration

	// Header
	homeBtn    *widget.Button
	catalogBtn *widget.Button
	cartBtn    *widget.Button
	breadcrumb *widget.Label

	body        *fyne.Container
	pages       map[session.Page]pageView
	currentPage session.Page
	lastView    session.View
}

// NewRootUI creates the main UI and subscribes it to the session
func NewRootUI(window fyne.Window, sess *session.Session, settings *config.Settings, localization *Localization) *RootUI {
	ui := &RootUI{
		window:       window,
		session:      sess,
		settings:     settings,
		localization: localization,
		images:       NewImageLoader(),
		timeout:      settings.GetRequestTimeout(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	sess.Subscribe(func(v session.View) {
		fyne.Do(func() {
			ui.render(v)
		})
	})
	ui.render(sess.View())

	log.Printf("UI setup completed successfully")
	return ui
}

// Start opens the initial location in the background
func (ui *RootUI) Start(location string) {
	ui.dispatch(func(ctx context.Context) error {
		return ui.session.Navigate(ctx, location)
	}, nil)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.homeBtn = widget.NewButton(ui.localization.GetText(KeyNavHome), func() { ui.navigate(session.NewLocation(session.PageHome)) })
	ui.catalogBtn = widget.NewButton(ui.localization.GetText(KeyNavCatalog), func() { ui.navigate(session.NewLocation(session.PageCatalog)) })
	ui.cartBtn = widget.NewButton(CartButtonText(0, ui.localization), func() { ui.navigate(session.NewLocation(session.PageCart)) })
	ui.cartBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	nav := container.NewHBox(ui.homeBtn, ui.catalogBtn, ui.cartBtn, settingsBtn)
	header := container.NewBorder(nil, nil, title, nav)

	ui.breadcrumb = widget.NewLabel("")
	ui.breadcrumb.Importance = widget.LowImportance

	ui.buildPages()
	ui.body = container.NewStack()

	content := container.NewBorder(
		container.NewVBox(header, widget.NewSeparator(), ui.breadcrumb),
		nil,
		nil,
		nil,
		ui.body,
	)
	ui.window.SetContent(content)
}

// buildPages (re)creates every screen, e.g. after a language change
func (ui *RootUI) buildPages() {
	ui.pages = map[session.Page]pageView{
		session.PageHome:     newHomePage(ui),
		session.PageCatalog:  newCatalogPage(ui),
		session.PageCart:     newCartPage(ui),
		session.PageCheckout: newCheckoutPage(ui),
		session.PageThankYou: newThankYouPage(ui),
	}
	ui.currentPage = ""
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language and rebuilds the screens
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.homeBtn.SetText(ui.localization.GetText(KeyNavHome))
	ui.catalogBtn.SetText(ui.localization.GetText(KeyNavCatalog))

	ui.buildPages()
	ui.render(ui.session.View())
}

// render applies a published view. It must run on the UI thread.
func (ui *RootUI) render(v session.View) {
	ui.lastView = v
	ui.cartBtn.SetText(CartButtonText(v.CartCount, ui.localization))

	crumb := Breadcrumb(v.Location.Page, ui.localization)
	ui.breadcrumb.SetText(crumb)
	if crumb == "" {
		ui.breadcrumb.Hide()
	} else {
		ui.breadcrumb.Show()
	}

	page, ok := ui.pages[v.Location.Page]
	if !ok {
		return
	}
	if v.Location.Page != ui.currentPage {
		ui.currentPage = v.Location.Page
		ui.body.Objects = []fyne.CanvasObject{page.content()}
		ui.body.Refresh()
	}
	page.update(v)
}

// navigate opens a location in the background
func (ui *RootUI) navigate(loc session.Location) {
	ui.dispatch(func(ctx context.Context) error {
		return ui.session.Open(ctx, loc)
	}, nil)
}

// dispatch runs a blocking session command off the UI thread. onErr, when
// set, is called on the UI thread with the command error.
func (ui *RootUI) dispatch(cmd func(ctx context.Context) error, onErr func(error)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ui.timeout)
		defer cancel()

		err := cmd(ctx)
		if err == nil {
			return
		}
		log.Printf("command failed: %v", err)
		if onErr != nil {
			fyne.Do(func() {
				onErr(err)
			})
		}
	}()
}

// addToCart adds a product and confirms it with a toast
func (ui *RootUI) addToCart(productID int) {
	if ui.session.AddToCart(productID) {
		ui.showToast(ui.localization.GetText(KeySuccess), ui.localization.GetText(KeyAddedToCart))
	}
}

// proceedToCheckout opens checkout or tells the user the cart is empty
func (ui *RootUI) proceedToCheckout() {
	ui.dispatch(func(ctx context.Context) error {
		return ui.session.ProceedToCheckout(ctx)
	}, func(err error) {
		if errors.Is(err, checkout.ErrEmptyCart) {
			ui.showMessage(ui.localization.GetText(KeyCartEmptyTitle), ui.localization.GetText(KeyCartEmpty))
		}
	})
}

// submitErrorMessage maps a checkout failure to a localized message
func (ui *RootUI) submitErrorMessage(err error) (string, string) {
	l := ui.localization

	var validationErr *checkout.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fields := make([]string, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			fields = append(fields, l.GetText(fieldTextKey(f)))
		}
		return l.GetText(KeyInvalidForm), strings.Join(fields, "\n")
	case errors.Is(err, checkout.ErrEmptyCart):
		return l.GetText(KeyCartEmptyTitle), l.GetText(KeyCartEmpty)
	case errors.Is(err, checkout.ErrSubmissionInProgress):
		return l.GetText(KeyError), l.GetText(KeyOrderPending)
	default:
		return l.GetText(KeyError), l.GetText(KeyOrderFailed)
	}
}

func fieldTextKey(f checkout.Field) string {
	switch f {
	case checkout.FieldName:
		return KeyName
	case checkout.FieldEmail:
		return KeyEmail
	case checkout.FieldAddress:
		return KeyAddress
	}
	return string(f)
}

// showMessage shows a modal information dialog
func (ui *RootUI) showMessage(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func(languageChanged bool) {
		if languageChanged {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
	}).Show()
}

// showToast shows a short-lived notification in the top-right corner
func (ui *RootUI) showToast(title, message string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		toast.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
	)
	toast = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toast.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}
