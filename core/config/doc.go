// Package config provides configuration management for the Media Store.
//
// It utilizes Viper for loading configuration from environment variables
// and a local .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Storage: backend type, container name, SAS URL and token
//   - Log: logging level and format
//
// Environment variables map onto nested keys by joining with underscores,
// so storage.sas_url is set via STORAGE_SAS_URL. Values in the .env file
// take precedence over the process environment.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Container)
package config
