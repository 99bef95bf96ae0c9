package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/jokeget/jokeboard/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDarkMode        = "darkMode"
	KeyJokeCategory    = "joke_category"
	KeyProviderBaseURL = "provider_base_url"
	KeyExportDir       = "export_directory"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultDarkMode = false
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDarkMode returns whether the dark display mode is enabled
func (s *Settings) GetDarkMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyDarkMode, DefaultDarkMode)
}

// SetDarkMode sets the dark display mode flag
func (s *Settings) SetDarkMode(dark bool) {
	s.app.Preferences().SetBool(KeyDarkMode, dark)
}

// GetJokeCategory returns the last used joke category
func (s *Settings) GetJokeCategory() model.Category {
	category := model.Category(s.app.Preferences().String(KeyJokeCategory))
	if !category.IsValid() {
		s.SetJokeCategory(model.CategoryAny)
		return model.CategoryAny
	}
	return category
}

// SetJokeCategory sets the joke category used for the next fetch
func (s *Settings) SetJokeCategory(category model.Category) {
	if !category.IsValid() {
		category = model.CategoryAny
	}
	s.app.Preferences().SetString(KeyJokeCategory, category.String())
}

// GetProviderBaseURL returns the joke provider base URL override, or
// empty string to select the default public provider
func (s *Settings) GetProviderBaseURL() string {
	return s.app.Preferences().String(KeyProviderBaseURL)
}

// SetProviderBaseURL sets the joke provider base URL override
func (s *Settings) SetProviderBaseURL(baseURL string) {
	s.app.Preferences().SetString(KeyProviderBaseURL, baseURL)
}

// GetExportDirectory returns the directory used for favorites exports
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		dir = filepath.Join(home, "jokeboard")
		s.SetExportDirectory(dir)
	}
	return dir
}

// SetExportDirectory sets the directory used for favorites exports
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
