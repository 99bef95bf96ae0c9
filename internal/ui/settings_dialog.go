package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jokeget/jokeboard/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	providerURLEntry *widget.Entry
	exportDirEntry   *widget.Entry
	languageSelect   *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Provider base URL override (empty selects the public provider)
	sd.providerURLEntry = widget.NewEntry()
	sd.providerURLEntry.SetPlaceHolder("https://v2.jokeapi.dev")

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder("Export directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyProviderURL) + ":"),
		sd.providerURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyExportDirectory) + ":"),
		exportDirRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage) + ":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.providerURLEntry.SetText(sd.settings.GetProviderBaseURL())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Provider URL may be cleared to return to the public provider;
	// the new value applies on next app start
	sd.settings.SetProviderBaseURL(sd.providerURLEntry.Text)

	if sd.exportDirEntry.Text != "" {
		sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
