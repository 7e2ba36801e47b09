// Package config defines the application configuration structure and loads
// it from environment variables and config files.
package config
