package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCart     = "🛒"
	IconRemove   = "✕"
	IconMinus    = "−"
	IconPlus     = "+"
	IconClose    = "×"
	IconWater    = "💧"
	IconSun      = "☀"
)

// Text fragments
const (
	BreadcrumbSeparator = " › "
	MiddleDotSeparator  = " · "
	QuantityFormat      = "%dx %s"
)

// Layout sizing
const (
	CardWidth       float32 = 220
	CardImageHeight float32 = 140
	CardMinHeight   float32 = 320
	CatalogColumns          = 3
	FeaturedColumns         = 4
	CartImageSize   float32 = 64
	SummaryWidth    float32 = 260
	FormMinWidth    float32 = 420
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 280
	ToastHeight   float32 = 90
	ToastMargin   float32 = 20
	ToastAutoHide         = 2500 * time.Millisecond
)

// Image loading
const (
	ImageLoadTimeout = 15 * time.Second
	ImageCacheSize   = 128
)
