package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/floraverde/storefront/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged bool)

	// UI components
	apiURLEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(languageChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(int(config.DefaultRequestTimeout / time.Second)))
	sd.timeoutEntry.Validator = validateTimeout

	// Language labels sorted for a stable order
	labels := make([]string, 0)
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyAPIBaseURL)),
		sd.apiURLEntry,

		widget.NewLabel(l.GetText(KeyRequestTimeout)),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	connectionChanged := false

	apiURL := strings.TrimSpace(sd.apiURLEntry.Text)
	if apiURL != sd.settings.GetAPIBaseURL() {
		sd.settings.SetAPIBaseURL(apiURL)
		connectionChanged = true
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		timeout := time.Duration(seconds) * time.Second
		if timeout != sd.settings.GetRequestTimeout() {
			sd.settings.SetRequestTimeout(timeout)
			connectionChanged = true
		}
	}

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		languageChanged = true
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged)
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if connectionChanged {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// validateTimeout accepts an empty value or whole seconds in range
func validateTimeout(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	seconds, err := strconv.Atoi(text)
	if err != nil {
		return err
	}
	timeout := time.Duration(seconds) * time.Second
	if timeout < config.MinRequestTimeout || timeout > config.MaxRequestTimeout {
		return errTimeoutRange
	}
	return nil
}

var errTimeoutRange = fmt.Errorf("timeout must be between %d and %d seconds",
	int(config.MinRequestTimeout/time.Second), int(config.MaxRequestTimeout/time.Second))
