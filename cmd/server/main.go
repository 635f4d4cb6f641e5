// cmd/server/main.go
// Entry point for the Pickleball Venue API server.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/trentd187/pickleball-venue/internal/config"
	"github.com/trentd187/pickleball-venue/internal/database"
	"github.com/trentd187/pickleball-venue/internal/server"
	"github.com/trentd187/pickleball-venue/internal/store"
	"github.com/trentd187/pickleball-venue/internal/venue"
)

func main() {
	cfg := config.Load()

	// The store is optional. Without DATABASE_URL, or when the database cannot
	// be reached, the API runs in degraded mode: listings are empty and writes
	// return a simulated id.
	st := openStore(cfg)

	svc := venue.New(st, venue.Settings{
		DatabaseURLSet:  cfg.HasDatabaseURL(),
		DatabaseNameSet: cfg.HasDatabaseName(),
	})
	app := server.New(svc)

	// Shut down gracefully on Ctrl+C / SIGTERM so in-flight bookings finish.
	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		log.Println("shutting down HTTP server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Starting server on port %s (env=%s)", cfg.Port, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// openStore connects to the configured database and brings its schema up to
// date. It falls back to store.Unavailable when no database is configured or
// the connection fails. A failing migration is fatal: serving against a
// half-migrated schema could break the double-booking guarantee.
func openStore(cfg *config.Config) store.Store {
	if !cfg.HasDatabaseURL() {
		log.Println("DATABASE_URL not set; running without a store")
		return store.Unavailable{}
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Printf("Failed to connect to database, running without a store: %v", err)
		return store.Unavailable{}
	}

	if !database.IsSQLite(cfg.DatabaseURL) {
		if err := database.RunMigrations(cfg.MigrationsDir, cfg.DatabaseURL); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
	}

	return store.NewGormStore(db)
}
