// Package config provides configuration management for the item matcher.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Database: connection details for the database ledger slot
//   - Storage: S3/MinIO credentials and bucket
//   - Catalog: where the source and candidate catalogs are read from
//   - Slot: which backend persists the ledger
//   - Matcher: scorer, prefix length, shortlist size, auto-reject and CSV layout
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Slot.Driver)
package config
