// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure and its derived values.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting every
// route (auth is disabled when it is empty), and the request body limit,
// which bounds the size of a single upload.
package server
