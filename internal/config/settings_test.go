package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/jokeget/jokeboard/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDarkMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetDarkMode() != DefaultDarkMode {
		t.Errorf("Expected default dark mode %v, got %v", DefaultDarkMode, settings.GetDarkMode())
	}

	// Test setting custom value
	settings.SetDarkMode(true)
	if !settings.GetDarkMode() {
		t.Error("Expected dark mode to be enabled after SetDarkMode(true)")
	}

	settings.SetDarkMode(false)
	if settings.GetDarkMode() {
		t.Error("Expected dark mode to be disabled after SetDarkMode(false)")
	}
}

func TestDarkMode_CorruptStoredValue(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// A non-boolean stored value falls back to the default
	app.Preferences().SetString(KeyDarkMode, "not-a-bool")

	if settings.GetDarkMode() != DefaultDarkMode {
		t.Errorf("Expected fallback to default %v on corrupt value", DefaultDarkMode)
	}
}

func TestJokeCategory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetJokeCategory() != model.CategoryAny {
		t.Errorf("Expected default category %s, got %s", model.CategoryAny, settings.GetJokeCategory())
	}

	// Test setting custom value
	settings.SetJokeCategory(model.CategoryProgramming)
	if settings.GetJokeCategory() != model.CategoryProgramming {
		t.Errorf("Expected category %s, got %s", model.CategoryProgramming, settings.GetJokeCategory())
	}

	// Unknown stored value falls back to the sentinel
	app.Preferences().SetString(KeyJokeCategory, "Nonsense")
	if settings.GetJokeCategory() != model.CategoryAny {
		t.Errorf("Expected fallback to %s for unknown category", model.CategoryAny)
	}
}

func TestProviderBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is empty (client falls back to the public provider)
	if settings.GetProviderBaseURL() != "" {
		t.Errorf("Expected empty default base URL, got %s", settings.GetProviderBaseURL())
	}

	customURL := "http://localhost:8080"
	settings.SetProviderBaseURL(customURL)
	if settings.GetProviderBaseURL() != customURL {
		t.Errorf("Expected base URL %s, got %s", customURL, settings.GetProviderBaseURL())
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)
	if settings.GetExportDirectory() != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, settings.GetExportDirectory())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}
