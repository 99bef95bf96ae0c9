package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/jokeget/jokeboard/internal/platform"
)

// Export file naming
const (
	ExportFilePrefix    = "favorites-"
	ExportFileExtension = ".json"
	ExportFilePerms     = 0644
)

// onExportFavorites writes the favorites list to a JSON file in the
// configured export directory and reveals it in the system file manager
func (ui *RootUI) onExportFavorites() {
	if len(ui.favorites) == 0 {
		ui.showTransientNotice(ui.localization.GetText(KeyNothingToExport))
		return
	}

	exportDir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		log.Printf("Failed to ensure export dir %s: %v", exportDir, err)
		ui.showTransientNotice(ui.localization.GetText(KeyExportFailed))
		return
	}

	data, err := json.MarshalIndent(ui.favorites, "", "  ")
	if err != nil {
		log.Printf("Failed to serialize favorites for export: %v", err)
		ui.showTransientNotice(ui.localization.GetText(KeyExportFailed))
		return
	}

	fileName := ExportFilePrefix + uuid.NewString() + ExportFileExtension
	exportPath := filepath.Join(exportDir, fileName)

	if err := os.WriteFile(exportPath, data, ExportFilePerms); err != nil {
		log.Printf("Failed to write export file %s: %v", exportPath, err)
		ui.showTransientNotice(ui.localization.GetText(KeyExportFailed))
		return
	}

	log.Printf("Exported %d favorites to %s", len(ui.favorites), exportPath)
	ui.showTransientNotice(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyExportDone), fileName))

	// System notification plus reveal, both best-effort
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: ui.localization.GetText(KeyExportDone),
	})

	if err := platform.RevealFileInManager(exportPath); err != nil {
		log.Printf("Failed to reveal export file %s: %v", exportPath, err)
	}
}
