package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"discount-hub/internal/infra/db"
	"discount-hub/internal/pkg/config"
)

func main() {
	dir := flag.String("dir", "db/migrations", "directory containing *.up.sql files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := db.RunMigrations(context.Background(), pool, *dir); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied")
}
