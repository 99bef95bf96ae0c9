package api

// Package api implements the HTTP client for the public joke provider. It
// covers the two outbound calls the app makes: fetching a random joke by
// category and submitting a +1/-1 rating. Network and parse failures are
// translated into the ErrNetwork/ErrParse taxonomy for uniform handling
// in the UI.
