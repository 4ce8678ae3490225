// Package config provides configuration management for the registry API.
//
// It utilizes Viper for loading configuration from environment variables,
// config files (config.yaml), and command-line flags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, body limit, CORS)
//   - Database: MySQL connection details and pool limits
//   - Storage: S3/MinIO credentials for the report archive
//   - Log: Logging level and format
//   - Geocoding: monthly quota for the external geocoding provider
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
