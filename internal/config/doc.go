// Package config provides environment-based configuration.
//
// Loads from process environment (a .env file is read by main via godotenv).
// Validates required fields and numeric formats, failing fast at startup.
package config
