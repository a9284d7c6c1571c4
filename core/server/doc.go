// Package server holds the HTTP server configuration.
//
// The actual Fiber app is assembled in the start command; this package only
// defines the partial config (port, API key, default sync mode and deadline)
// so it can be embedded into the application config and validated early.
package server
