package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/floraverde/storefront/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyLanguage       = "app_language"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyDeliveryMethod = "delivery_method"
)

// Default values
const (
	DefaultAPIBaseURL     = "http://localhost:8080/api"
	DefaultLanguage       = "es"
	DefaultRequestTimeout = 10 * time.Second
)

// Request timeout bounds accepted from the settings dialog
const (
	MinRequestTimeout = 1 * time.Second
	MaxRequestTimeout = 120 * time.Second
)

// Settings manages user configuration persisted in the app preferences.
// Unset keys fall back to the bootstrap defaults.
type Settings struct {
	app      fyne.App
	defaults Bootstrap
}

// NewSettings creates a settings manager with built-in defaults
func NewSettings(app fyne.App) *Settings {
	return NewSettingsWithDefaults(app, DefaultBootstrap())
}

// NewSettingsWithDefaults creates a settings manager whose fallbacks come from
// the bootstrap configuration (file, .env, environment)
func NewSettingsWithDefaults(app fyne.App, defaults Bootstrap) *Settings {
	return &Settings{app: app, defaults: defaults.normalized()}
}

// GetAPIBaseURL returns the backend base URL without a trailing slash
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		return s.defaults.APIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the backend base URL. Empty resets to the default.
func (s *Settings) SetAPIBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		s.app.Preferences().RemoveValue(KeyAPIBaseURL)
		return
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetLanguage returns the configured UI language code
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return s.defaults.Language
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRequestTimeout returns the per-request backend timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		return s.defaults.RequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeout sets the backend timeout, clamped to the accepted range
func (s *Settings) SetRequestTimeout(timeout time.Duration) {
	if timeout < MinRequestTimeout {
		timeout = MinRequestTimeout
	}
	if timeout > MaxRequestTimeout {
		timeout = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, int(timeout/time.Second))
}

// GetDeliveryMethod returns the last delivery method chosen at checkout
func (s *Settings) GetDeliveryMethod() model.DeliveryMethod {
	method := model.DeliveryMethod(s.app.Preferences().String(KeyDeliveryMethod))
	if method != model.DeliveryPickup {
		return model.DeliveryShipping
	}
	return method
}

// SetDeliveryMethod remembers the delivery method for the next checkout
func (s *Settings) SetDeliveryMethod(method model.DeliveryMethod) {
	s.app.Preferences().SetString(KeyDeliveryMethod, string(method))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}
