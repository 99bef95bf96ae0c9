package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/jokeget/jokeboard/internal/model"
)

// FavoriteRow represents a compact favorites list row widget
type FavoriteRow struct {
	widget.BaseWidget

	joke         model.Joke
	localization *Localization

	// UI components
	textLabel   *widget.Label
	ratingLabel *widget.Label

	// Action buttons
	shareBtn  *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onShare  func(jokeID string)
	onRemove func(jokeID string)
}

// NewFavoriteRow creates a new favorites row widget
func NewFavoriteRow(joke model.Joke, localization *Localization) *FavoriteRow {
	fr := &FavoriteRow{
		joke:         joke,
		localization: localization,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	fr.updateFromJoke()
	return fr
}

// SetCallbacks sets the action callbacks
func (fr *FavoriteRow) SetCallbacks(
	onShare func(jokeID string),
	onRemove func(jokeID string),
) {
	fr.onShare = onShare
	fr.onRemove = onRemove
}

// UpdateJoke updates the row with new joke data
func (fr *FavoriteRow) UpdateJoke(joke model.Joke) {
	fr.joke = joke
	fr.updateFromJoke()
	fr.Refresh()
}

// createUI creates the UI components
func (fr *FavoriteRow) createUI() {
	fr.textLabel = widget.NewLabel("")
	fr.textLabel.Wrapping = fyne.TextWrapWord
	fr.textLabel.Truncation = fyne.TextTruncateEllipsis
	fr.textLabel.Alignment = fyne.TextAlignLeading

	fr.ratingLabel = widget.NewLabel("")
	fr.ratingLabel.Alignment = fyne.TextAlignTrailing

	fr.shareBtn = widget.NewButton(IconShare, func() {
		if fr.onShare == nil {
			log.Printf("onShare callback is nil for favorite %s", fr.joke.ID)
			return
		}
		fr.onShare(fr.joke.ID)
	})
	fr.shareBtn.Importance = widget.LowImportance

	fr.removeBtn = widget.NewButton(IconClose, func() {
		if fr.onRemove == nil {
			log.Printf("onRemove callback is nil for favorite %s", fr.joke.ID)
			return
		}
		fr.onRemove(fr.joke.ID)
	})
	fr.removeBtn.Importance = widget.LowImportance
}

// updateFromJoke refreshes labels from the current joke data
func (fr *FavoriteRow) updateFromJoke() {
	fr.textLabel.SetText(fr.joke.ShareText())

	switch fr.joke.Rating {
	case model.RatingUp:
		fr.ratingLabel.SetText(IconThumbsUp)
	case model.RatingDown:
		fr.ratingLabel.SetText(IconThumbsDown)
	default:
		fr.ratingLabel.SetText(DashPlaceholder)
	}
}

// MinSize returns the minimum size
func (fr *FavoriteRow) MinSize() fyne.Size {
	size := fr.BaseWidget.MinSize()
	// Ensure minimum size to prevent layout issues
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// CreateRenderer creates the widget renderer
func (fr *FavoriteRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(fr.ratingLabel, fr.shareBtn, fr.removeBtn)
	layout := container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, fr.textLabel),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(layout)
}
