package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// RevealFileInManager opens the file in the system file manager and
// highlights it where the platform supports selection
func RevealFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return revealFileInFinderMacOS(absPath)
	case OSWindows:
		return revealFileInExplorerWindows(absPath)
	case OSLinux:
		return revealFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealFileInFinderMacOS opens file in Finder on macOS with selection
func revealFileInFinderMacOS(filePath string) error {
	cmd := exec.Command(OpenCommand, MacOSSelectFlag, filePath)
	return cmd.Run()
}

// revealFileInExplorerWindows opens file in Explorer on Windows with selection
func revealFileInExplorerWindows(filePath string) error {
	cmd := exec.Command(ExplorerCommand, WindowsSelectParam, filePath)
	return cmd.Run()
}

// revealFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func revealFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dir)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
