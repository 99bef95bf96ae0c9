package platform

import (
	"errors"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Share hand-off constants
const (
	MailtoScheme    = "mailto:"
	MailtoBodyParam = "?body="

	// Android share intent parameters
	AndroidActivityManager = "am"
	AndroidSendAction      = "android.intent.action.SEND"
)

// ErrShareUnsupported means the platform offers no native share hand-off
var ErrShareUnsupported = errors.New("native share not supported on this platform")

// ShareText hands the text to a platform share target. Callers fall back
// to the clipboard when this returns an error.
func ShareText(text string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return shareTextMacOS(text)
	case OSWindows:
		return shareTextWindows(text)
	case OSLinux:
		return shareTextLinux(text)
	case OSAndroid:
		return shareTextAndroid(text)
	default:
		return ErrShareUnsupported
	}
}

// ShareURL builds the share hand-off URL for the given text
func ShareURL(text string) string {
	// QueryEscape encodes spaces as '+', which mail clients render
	// literally; percent-encode them instead
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return MailtoScheme + MailtoBodyParam + escaped
}

// shareTextMacOS opens the default share target (mail composer) on macOS
func shareTextMacOS(text string) error {
	cmd := exec.Command(OpenCommand, ShareURL(text))
	return cmd.Run()
}

// shareTextWindows opens the default share target on Windows
func shareTextWindows(text string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, ShareURL(text))
	return cmd.Run()
}

// shareTextLinux opens the default share target via xdg-open on Linux
func shareTextLinux(text string) error {
	if _, err := exec.LookPath(XDGOpenCommand); err != nil {
		return ErrShareUnsupported
	}
	cmd := exec.Command(XDGOpenCommand, ShareURL(text))
	return cmd.Run()
}

// shareTextAndroid raises a send intent on Android
func shareTextAndroid(text string) error {
	cmd := exec.Command(AndroidActivityManager, "start",
		"-a", AndroidSendAction,
		"-t", "text/plain",
		"--es", "android.intent.extra.TEXT", text)
	return cmd.Run()
}
