package platform

// Package platform contains OS-specific helpers: directory creation,
// revealing exported files in the system file manager, and the native
// share hand-off used by the share service.
