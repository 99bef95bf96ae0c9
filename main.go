package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/jokeget/jokeboard/internal/api"
	"github.com/jokeget/jokeboard/internal/config"
	"github.com/jokeget/jokeboard/internal/platform"
	"github.com/jokeget/jokeboard/internal/share"
	"github.com/jokeget/jokeboard/internal/store"
	"github.com/jokeget/jokeboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.jokeget.jokeboard"
	AppName = "JokeBoard"

	WindowWidth  = 520
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("JokeBoard v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize settings and apply persisted display mode
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewBoardTheme(settings.GetDarkMode()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure the export directory exists
	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	// Initialize services
	gateway := api.NewClient(settings.GetProviderBaseURL())
	favorites := store.NewFavoritesStore(myApp.Preferences())
	shareSvc := share.NewService(myApp.Clipboard())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, gateway, favorites, shareSvc)

	// Show and run
	myWindow.ShowAndRun()
}
