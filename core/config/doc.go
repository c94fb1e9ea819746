// Package config provides configuration management for the Classroom Audit service.
//
// It utilizes Viper for loading configuration from environment variables,
// with a .env file (via godotenv) layered underneath for local development.
// Defaults come from the `default` struct tags on each section's Config.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, roster convention)
//   - Classroom: Google Classroom API base URL, token and cache TTL
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
