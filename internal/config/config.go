// Package config handles loading runtime configuration for the Pickleball Venue API.
// Configuration values (the store connection string, database name and port) are read
// from environment variables rather than being hardcoded, so the same binary can run
// locally against sqlite and in production against PostgreSQL.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// In production, real env vars are used instead.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port          string // The TCP port the HTTP server will listen on (e.g., "8000")
	DatabaseURL   string // Store connection string; empty means the store is unavailable
	DatabaseName  string // Logical database name, reported by the diagnostic endpoint
	Env           string // "development", "staging", or "production"
	MigrationsDir string // Directory holding the golang-migrate SQL files
}

// Load reads configuration from environment variables and returns a populated Config.
// A missing .env file is fine: real environment variables take over.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DatabaseName:  os.Getenv("DATABASE_NAME"),
		Env:           getEnv("ENV", "development"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}
}

// HasDatabaseURL reports whether a store connection string was configured.
func (c *Config) HasDatabaseURL() bool { return c.DatabaseURL != "" }

// HasDatabaseName reports whether a store name was configured.
func (c *Config) HasDatabaseName() bool { return c.DatabaseName != "" }

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
