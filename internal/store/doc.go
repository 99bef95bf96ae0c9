package store

// Package store persists the favorites list in the platform preference
// store. The list is kept as a single JSON envelope with a 30-day expiry
// horizon refreshed on every write; reads never fail, falling back to an
// empty list on absent, corrupt, or expired data.
