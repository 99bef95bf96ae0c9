package share

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"

	"github.com/jokeget/jokeboard/internal/platform"
)

// Outcome reports which path delivered the shared text
type Outcome string

const (
	// OutcomeShared means the native share hand-off succeeded
	OutcomeShared Outcome = "Shared"

	// OutcomeCopied means the text was copied to the clipboard instead
	OutcomeCopied Outcome = "Copied"
)

// ErrEmptyText is returned when there is nothing to share
var ErrEmptyText = errors.New("nothing to share")

// Service delivers text to the user's share target, falling back to the
// clipboard when the platform share capability is absent or fails
type Service struct {
	clipboard   fyne.Clipboard
	nativeShare func(text string) error
}

// NewService creates a new share service
func NewService(clipboard fyne.Clipboard) *Service {
	return &Service{
		clipboard:   clipboard,
		nativeShare: platform.ShareText,
	}
}

// Share attempts the native share action; on absence or failure of that
// capability the text is copied to the clipboard. The returned outcome
// tells the caller which notice to surface.
func (s *Service) Share(text string) (Outcome, error) {
	if text == "" {
		return "", ErrEmptyText
	}

	if err := s.nativeShare(text); err == nil {
		return OutcomeShared, nil
	} else {
		log.Printf("Native share unavailable, falling back to clipboard: %v", err)
	}

	s.clipboard.SetContent(text)
	return OutcomeCopied, nil
}
