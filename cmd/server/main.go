// Package main implements the entry point for the Pro Manage API server,
// a task/board management backend: user registration and login plus CRUD,
// windowed listing and aggregate counting over board cards with embedded
// checklists.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/promanage/promanage-api/internal/config"
	"github.com/promanage/promanage-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status, version) and exit",
	)
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// run loads configuration, sets up logging and the database, and either
// executes a migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(db, migrateCmd)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	router := app.setupRouter()

	return app.startHTTPServer(context.Background(), router)
}
