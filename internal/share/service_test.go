package share

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestShare_NativeSuccess(t *testing.T) {
	app := test.NewApp()

	var shared string
	svc := NewService(app.Clipboard())
	svc.nativeShare = func(text string) error {
		shared = text
		return nil
	}

	outcome, err := svc.Share("a joke")
	if err != nil {
		t.Fatalf("Share returned error: %v", err)
	}
	if outcome != OutcomeShared {
		t.Errorf("Expected outcome %s, got %s", OutcomeShared, outcome)
	}
	if shared != "a joke" {
		t.Errorf("Expected native share to receive 'a joke', got %q", shared)
	}
	if app.Clipboard().Content() != "" {
		t.Error("Clipboard should stay untouched when native share succeeds")
	}
}

func TestShare_FallsBackToClipboard(t *testing.T) {
	app := test.NewApp()

	svc := NewService(app.Clipboard())
	svc.nativeShare = func(string) error {
		return errors.New("share sheet dismissed")
	}

	outcome, err := svc.Share("a joke")
	if err != nil {
		t.Fatalf("Share returned error: %v", err)
	}
	if outcome != OutcomeCopied {
		t.Errorf("Expected outcome %s, got %s", OutcomeCopied, outcome)
	}
	if app.Clipboard().Content() != "a joke" {
		t.Errorf("Expected clipboard to contain 'a joke', got %q", app.Clipboard().Content())
	}
}

func TestShare_EmptyText(t *testing.T) {
	app := test.NewApp()

	svc := NewService(app.Clipboard())
	svc.nativeShare = func(string) error { return nil }

	_, err := svc.Share("")
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText for empty input, got %v", err)
	}
}
