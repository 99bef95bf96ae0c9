package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/jokeget/jokeboard/internal/api"
	"github.com/jokeget/jokeboard/internal/config"
	"github.com/jokeget/jokeboard/internal/model"
	"github.com/jokeget/jokeboard/internal/share"
	"github.com/jokeget/jokeboard/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	gateway      api.Gateway
	favStore     *store.FavoritesStore
	shareSvc     share.Sharer
	settings     *config.Settings
	localization *Localization

	// Session state: single logical writer, mutated only on the UI thread
	status    model.FetchStatus
	current   *model.Joke
	favorites []model.Joke

	// Joke panel
	categorySelect *widget.Select
	generateBtn    *widget.Button
	setupLabel     *widget.Label
	deliveryLabel  *widget.Label
	favoriteBtn    *widget.Button
	shareBtn       *widget.Button
	rateUpBtn      *widget.Button
	rateDownBtn    *widget.Button
	ratingLabel    *widget.Label

	// Favorites panel
	favoritesTitle *widget.Label
	favoritesList  *widget.List

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	noticeSeq             int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, gateway api.Gateway, favStore *store.FavoritesStore, shareSvc share.Sharer) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		gateway:      gateway,
		favStore:     favStore,
		shareSvc:     shareSvc,
		settings:     settings,
		localization: localization,
		status:       model.FetchStatusIdle,

		// Favorites are loaded once at startup
		favorites: favStore.Load(),
	}

	log.Printf("RootUI initialized with %d persisted favorites", len(ui.favorites))

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Category selector, preselected from settings
	categoryNames := make([]string, 0, len(model.Categories()))
	for _, category := range model.Categories() {
		categoryNames = append(categoryNames, category.String())
	}
	ui.categorySelect = widget.NewSelect(categoryNames, func(selected string) {
		ui.settings.SetJokeCategory(model.Category(selected))
	})
	ui.categorySelect.SetSelected(ui.settings.GetJokeCategory().String())

	// Generate button
	ui.generateBtn = widget.NewButton(ui.localization.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.generateBtn, ui.categorySelect)

	// Create notification panel under the controls (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Joke display: setup line is bold, delivery line below for two-part jokes
	ui.setupLabel = widget.NewLabel(ui.localization.GetText(KeyNoJokeYet))
	ui.setupLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.setupLabel.Wrapping = fyne.TextWrapWord
	ui.deliveryLabel = widget.NewLabel("")
	ui.deliveryLabel.Wrapping = fyne.TextWrapWord

	// Action row
	ui.favoriteBtn = widget.NewButton(IconStarEmpty, ui.onToggleFavorite)
	ui.shareBtn = widget.NewButton(IconShare, ui.onShareCurrent)
	ui.rateUpBtn = widget.NewButton(IconThumbsUp, func() { ui.onRate(model.RatingUp) })
	ui.rateDownBtn = widget.NewButton(IconThumbsDown, func() { ui.onRate(model.RatingDown) })
	ui.ratingLabel = widget.NewLabel(DashPlaceholder)
	ui.ratingLabel.Alignment = fyne.TextAlignCenter
	ui.updateActionButtons()

	actionRow := container.NewHBox(
		ui.favoriteBtn,
		ui.shareBtn,
		widget.NewSeparator(),
		ui.rateUpBtn,
		ui.ratingLabel,
		ui.rateDownBtn,
	)

	jokePanel := container.NewVBox(
		ui.setupLabel,
		ui.deliveryLabel,
		actionRow,
		widget.NewSeparator(),
	)

	// Favorites panel
	ui.favoritesTitle = widget.NewLabel("")
	ui.favoritesTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.updateFavoritesTitle()

	ui.favoritesList = widget.NewList(
		func() int {
			return len(ui.favorites)
		},
		func() fyne.CanvasObject { return ui.createFavoriteItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateFavoriteItem(id, obj) },
	)

	topCombined := container.NewVBox(topPanel, ui.notificationContainer, jokePanel, ui.favoritesTitle)

	content := container.NewBorder(
		topCombined,      // top
		nil,              // bottom
		nil,              // left
		nil,              // right
		ui.favoritesList, // center - favorites list
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// File menu
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportFavorites), ui.onExportFavorites)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile), exportItem, settingsItem)

	// View menu with the dark mode toggle
	darkModeItem := fyne.NewMenuItem(ui.localization.GetText(KeyDarkMode), ui.onToggleDarkMode)
	darkModeItem.Checked = ui.settings.GetDarkMode()
	viewMenu := fyne.NewMenu(ui.localization.GetText(KeyView), darkModeItem)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fileMenu,
		viewMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onToggleDarkMode flips the persisted dark mode flag and applies the theme
func (ui *RootUI) onToggleDarkMode() {
	dark := !ui.settings.GetDarkMode()
	ui.settings.SetDarkMode(dark)
	ui.app.Settings().SetTheme(NewBoardTheme(dark))

	// Recreate menu to update checkmark
	ui.createMenu()

	log.Printf("Dark mode set to %v", dark)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))
	if ui.current == nil {
		ui.setupLabel.SetText(ui.localization.GetText(KeyNoJokeYet))
	}
	ui.updateFavoritesTitle()

	// Refresh favorites list to update row texts
	ui.favoritesList.Refresh()
}

// onGenerateClick handles the generate button click. A second fetch while
// one is outstanding is prevented by disabling the trigger, not by
// cancelling the request in flight.
func (ui *RootUI) onGenerateClick() {
	if !ui.status.CanFetch() {
		log.Printf("Ignoring generate click while a fetch is outstanding")
		return
	}

	category := ui.settings.GetJokeCategory()
	log.Printf("Fetching joke for category %s", category)

	ui.status = model.FetchStatusLoading
	ui.generateBtn.Disable()
	ui.showNotification(ui.localization.GetText(KeyLoading), true)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), FetchTimeout)
		defer cancel()

		joke, err := ui.gateway.FetchJoke(ctx, category)

		// Loading state is always reset here regardless of outcome
		fyne.Do(func() {
			defer ui.generateBtn.Enable()

			if err != nil {
				log.Printf("Joke fetch failed: %v", err)
				ui.status = model.FetchStatusErrored
				ui.showTransientNotice(ui.fetchErrorText(err))
				return
			}

			ui.status = model.FetchStatusLoaded
			ui.current = joke
			ui.hideNotification()
			ui.renderJoke()
		})
	}()
}

// fetchErrorText maps a gateway error to a user-visible notice
func (ui *RootUI) fetchErrorText(err error) string {
	if errors.Is(err, api.ErrParse) {
		return ui.localization.GetText(KeyParseError)
	}
	return ui.localization.GetText(KeyNetworkError)
}

// renderJoke updates the joke panel from the current joke, picking the
// setup/delivery branch for two-part jokes and the flat branch otherwise
func (ui *RootUI) renderJoke() {
	if ui.current == nil {
		ui.setupLabel.SetText(ui.localization.GetText(KeyNoJokeYet))
		ui.deliveryLabel.SetText("")
		ui.updateActionButtons()
		return
	}

	if ui.current.IsTwoPart() {
		ui.setupLabel.SetText(ui.current.Setup)
		ui.deliveryLabel.SetText(ui.current.Delivery)
	} else {
		ui.setupLabel.SetText(ui.current.Text)
		ui.deliveryLabel.SetText("")
	}

	ui.updateActionButtons()
}

// updateActionButtons syncs the action row with the current joke state
func (ui *RootUI) updateActionButtons() {
	if ui.current == nil {
		ui.favoriteBtn.Disable()
		ui.shareBtn.Disable()
		ui.rateUpBtn.Disable()
		ui.rateDownBtn.Disable()
		ui.ratingLabel.SetText(DashPlaceholder)
		return
	}

	ui.favoriteBtn.Enable()
	ui.shareBtn.Enable()
	ui.rateUpBtn.Enable()
	ui.rateDownBtn.Enable()

	if ui.favStore.IsFavorited(ui.current.ID) {
		ui.favoriteBtn.SetText(IconStarFilled)
	} else {
		ui.favoriteBtn.SetText(IconStarEmpty)
	}

	switch ui.current.Rating {
	case model.RatingUp:
		ui.ratingLabel.SetText(IconThumbsUp)
	case model.RatingDown:
		ui.ratingLabel.SetText(IconThumbsDown)
	default:
		ui.ratingLabel.SetText(DashPlaceholder)
	}
}

// onToggleFavorite adds or removes the current joke from the favorites
func (ui *RootUI) onToggleFavorite() {
	if ui.current == nil {
		return
	}

	ui.favorites = ui.favStore.Toggle(*ui.current)

	if ui.favStore.IsFavorited(ui.current.ID) {
		ui.showTransientNotice(ui.localization.GetText(KeyAddedToFavorites))
	} else {
		ui.showTransientNotice(ui.localization.GetText(KeyRemovedFromFavs))
	}

	ui.updateFavoritesTitle()
	ui.updateActionButtons()
	ui.favoritesList.Refresh()
}

// onRate records the rating locally and submits it in the background.
// Local state is authoritative; remote submission is fire-and-forget and
// never rolled back on failure.
func (ui *RootUI) onRate(rating int) {
	if ui.current == nil {
		return
	}

	ui.current.Rating = rating
	ui.updateActionButtons()

	jokeID := ui.current.ID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), FetchTimeout)
		defer cancel()

		if err := ui.gateway.SubmitRating(ctx, jokeID, rating); err != nil {
			log.Printf("Rating submission failed for joke %s: %v", jokeID, err)
			fyne.Do(func() {
				ui.showTransientNotice(ui.localization.GetText(KeyRatingFailed))
			})
			return
		}

		log.Printf("Rating %+d submitted for joke %s", model.NormalizeRating(rating), jokeID)
	}()
}

// onShareCurrent shares the current joke text
func (ui *RootUI) onShareCurrent() {
	if ui.current == nil {
		return
	}
	ui.shareText(ui.current.ShareText())
}

// shareText runs the share action in the background and reports which
// path delivered the text
func (ui *RootUI) shareText(text string) {
	go func() {
		outcome, err := ui.shareSvc.Share(text)

		fyne.Do(func() {
			if err != nil {
				log.Printf("Share failed: %v", err)
				return
			}

			switch outcome {
			case share.OutcomeShared:
				ui.showTransientNotice(ui.localization.GetText(KeyShared))
			case share.OutcomeCopied:
				ui.showTransientNotice(ui.localization.GetText(KeyCopiedToClipboard))
			}
		})
	}()
}

// createFavoriteItem creates a new favorites row widget
func (ui *RootUI) createFavoriteItem() fyne.CanvasObject {
	// Placeholder joke - will be updated in updateFavoriteItem
	dummyJoke := model.Joke{
		ID:   "placeholder",
		Text: "Loading...",
	}

	row := NewFavoriteRow(dummyJoke, ui.localization)
	row.SetCallbacks(ui.onShareFavorite, ui.onRemoveFavorite)
	return row
}

// updateFavoriteItem updates a favorites row with current data
func (ui *RootUI) updateFavoriteItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.favorites) {
		return
	}

	if row, ok := item.(*FavoriteRow); ok {
		row.SetCallbacks(ui.onShareFavorite, ui.onRemoveFavorite)
		row.UpdateJoke(ui.favorites[id])
	}
}

// onShareFavorite shares a favorited joke by id
func (ui *RootUI) onShareFavorite(jokeID string) {
	for _, fav := range ui.favorites {
		if fav.ID == jokeID {
			ui.shareText(fav.ShareText())
			return
		}
	}
	log.Printf("Favorite %s not found for sharing", jokeID)
}

// onRemoveFavorite removes a favorited joke by id
func (ui *RootUI) onRemoveFavorite(jokeID string) {
	for _, fav := range ui.favorites {
		if fav.ID == jokeID {
			ui.favorites = ui.favStore.Toggle(fav)
			ui.updateFavoritesTitle()
			ui.updateActionButtons()
			ui.favoritesList.Refresh()
			ui.showTransientNotice(ui.localization.GetText(KeyRemovedFromFavs))
			return
		}
	}
	log.Printf("Favorite %s not found for removal", jokeID)
}

// updateFavoritesTitle refreshes the favorites section heading
func (ui *RootUI) updateFavoritesTitle() {
	ui.favoritesTitle.SetText(fmt.Sprintf("%s (%d)", ui.localization.GetText(KeyFavorites), len(ui.favorites)))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		ui.showTransientNotice(ui.localization.GetText(KeySettingsSaved))
	})
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.noticeSeq++
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// showTransientNotice shows a message that hides itself after a short delay
func (ui *RootUI) showTransientNotice(message string) {
	ui.showNotification(message, false)

	seq := ui.noticeSeq
	go func() {
		time.Sleep(NoticeAutoHide)
		fyne.Do(func() {
			// A newer notice may have replaced this one
			if ui.noticeSeq == seq {
				ui.hideNotification()
			}
		})
	}()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}
