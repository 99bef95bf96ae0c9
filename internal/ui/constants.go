package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings   = "⚙"
	IconStarFilled = "★"
	IconStarEmpty  = "☆"
	IconShare      = "📤"
	IconCopy       = "📋"
	IconThumbsUp   = "👍"
	IconThumbsDown = "👎"
	IconClose      = "×"
	IconLanguage   = "🌐"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Layout sizing (FavoriteRow / lists)
const (
	RowMinWidth  float32 = 320
	RowMinHeight float32 = 48
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 320
)

// Notification behavior
const (
	NoticeAutoHide = 4 * time.Second
)

// Fetch behavior
const (
	FetchTimeout = 20 * time.Second
)
