package share

// Sharer defines the interface for the share service.
type Sharer interface {
	// Share delivers text natively or via the clipboard fallback
	Share(text string) (Outcome, error)
}
