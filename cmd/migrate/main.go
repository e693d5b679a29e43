// Command migrate applies the database schema and verifies connectivity.
package main

import (
	"context"
	"os"

	"earnings-screener/internal/config"
	"earnings-screener/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger("info").Error("loading configuration", "error", err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.LogLevel)

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("running migrations", "error", err)
		os.Exit(1)
	}
	log.Info("migrations completed")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("connecting to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	log.Info("database reachable")
}
