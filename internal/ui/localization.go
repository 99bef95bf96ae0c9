package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyGenerate          = "generate"
	KeyCategory          = "category"
	KeyFavorites         = "favorites"
	KeyFavorite          = "favorite"
	KeyUnfavorite        = "unfavorite"
	KeyShare             = "share"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyView              = "view"
	KeyDarkMode          = "dark_mode"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyLoading           = "loading"
	KeyNoJokeYet         = "no_joke_yet"
	KeyNetworkError      = "network_error"
	KeyParseError        = "parse_error"
	KeyShared            = "shared"
	KeyCopiedToClipboard = "copied_to_clipboard"
	KeyAddedToFavorites  = "added_to_favorites"
	KeyRemovedFromFavs   = "removed_from_favorites"
	KeyRatingFailed      = "rating_failed"
	KeyProviderURL       = "provider_url"
	KeyExportDirectory   = "export_directory"
	KeyExportFavorites   = "export_favorites"
	KeyExportDone        = "export_done"
	KeyExportFailed      = "export_failed"
	KeyNothingToExport   = "nothing_to_export"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "JokeBoard",
		KeyGenerate:          "Generate",
		KeyCategory:          "Category",
		KeyFavorites:         "Favorites",
		KeyFavorite:          "Favorite",
		KeyUnfavorite:        "Unfavorite",
		KeyShare:             "Share",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyView:              "View",
		KeyDarkMode:          "Dark Mode",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyLoading:           "Fetching a joke...",
		KeyNoJokeYet:         "Press Generate to fetch a joke",
		KeyNetworkError:      "Could not reach the joke provider",
		KeyParseError:        "The provider sent an unreadable joke",
		KeyShared:            "Shared",
		KeyCopiedToClipboard: "Copied to clipboard",
		KeyAddedToFavorites:  "Added to favorites",
		KeyRemovedFromFavs:   "Removed from favorites",
		KeyRatingFailed:      "Rating saved locally, submission failed",
		KeyProviderURL:       "Provider URL",
		KeyExportDirectory:   "Export Directory",
		KeyExportFavorites:   "Export Favorites",
		KeyExportDone:        "Favorites exported",
		KeyExportFailed:      "Export failed",
		KeyNothingToExport:   "No favorites to export",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "JokeBoard",
		KeyGenerate:          "Показать шутку",
		KeyCategory:          "Категория",
		KeyFavorites:         "Избранное",
		KeyFavorite:          "В избранное",
		KeyUnfavorite:        "Убрать из избранного",
		KeyShare:             "Поделиться",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeyDarkMode:          "Тёмная тема",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyLoading:           "Загружаем шутку...",
		KeyNoJokeYet:         "Нажмите, чтобы получить шутку",
		KeyNetworkError:      "Не удалось связаться с сервисом шуток",
		KeyParseError:        "Сервис прислал нечитаемую шутку",
		KeyShared:            "Отправлено",
		KeyCopiedToClipboard: "Скопировано в буфер обмена",
		KeyAddedToFavorites:  "Добавлено в избранное",
		KeyRemovedFromFavs:   "Удалено из избранного",
		KeyRatingFailed:      "Оценка сохранена локально, отправка не удалась",
		KeyProviderURL:       "URL сервиса",
		KeyExportDirectory:   "Папка экспорта",
		KeyExportFavorites:   "Экспорт избранного",
		KeyExportDone:        "Избранное экспортировано",
		KeyExportFailed:      "Экспорт не удался",
		KeyNothingToExport:   "Нет избранного для экспорта",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "JokeBoard",
		KeyGenerate:          "Gerar",
		KeyCategory:          "Categoria",
		KeyFavorites:         "Favoritos",
		KeyFavorite:          "Favoritar",
		KeyUnfavorite:        "Desfavoritar",
		KeyShare:             "Compartilhar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyView:              "Exibir",
		KeyDarkMode:          "Modo Escuro",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyLoading:           "Buscando uma piada...",
		KeyNoJokeYet:         "Pressione Gerar para buscar uma piada",
		KeyNetworkError:      "Não foi possível acessar o provedor de piadas",
		KeyParseError:        "O provedor enviou uma piada ilegível",
		KeyShared:            "Compartilhado",
		KeyCopiedToClipboard: "Copiado para a área de transferência",
		KeyAddedToFavorites:  "Adicionado aos favoritos",
		KeyRemovedFromFavs:   "Removido dos favoritos",
		KeyRatingFailed:      "Avaliação salva localmente, envio falhou",
		KeyProviderURL:       "URL do provedor",
		KeyExportDirectory:   "Diretório de exportação",
		KeyExportFavorites:   "Exportar Favoritos",
		KeyExportDone:        "Favoritos exportados",
		KeyExportFailed:      "Falha na exportação",
		KeyNothingToExport:   "Nenhum favorito para exportar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
