package model

// FetchStatus represents the state of the joke fetch cycle
type FetchStatus string

const (
	// FetchStatusIdle means no fetch is running
	FetchStatusIdle FetchStatus = "Idle"

	// FetchStatusLoading means a fetch is outstanding
	FetchStatusLoading FetchStatus = "Loading"

	// FetchStatusLoaded means the last fetch completed successfully
	FetchStatusLoaded FetchStatus = "Loaded"

	// FetchStatusErrored means the last fetch failed
	FetchStatusErrored FetchStatus = "Errored"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true if a fetch is outstanding
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusLoading
}

// CanFetch returns true if a new fetch may be triggered
func (fs FetchStatus) CanFetch() bool {
	return fs != FetchStatusLoading
}
