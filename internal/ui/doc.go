package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the joke gateway, the
// favorites store, and the share service, and renders the current joke,
// the favorites list, notifications, and settings. All UI strings are
// localized via Localization.
