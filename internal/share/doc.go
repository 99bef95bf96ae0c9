package share

// Package share implements the share action: a native platform share
// hand-off with a clipboard fallback. Both paths report an explicit
// outcome so the UI can tell the user what happened.
