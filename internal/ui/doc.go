package ui

// Package ui contains the Fyne-based desktop storefront. It renders the views
// published by the session (home, catalog, cart, checkout, thank-you) and
// sends every user action back to the session as a command. All UI strings
// are localized via Localization.
