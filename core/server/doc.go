// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as supported SIS export conventions.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, upload body limit, and the
// SIS export convention (auto, roster, schedule).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the audit feature to pin the export layout.
package server
