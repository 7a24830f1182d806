package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/promanage/promanage-api/migrations"
)

// runMigrations executes the given goose command (up, down, status, ...)
// against the embedded SQL migrations.
func runMigrations(db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	slog.Info("Executing migrations", "command", command)

	if err := goose.Run(command, db, ".", args...); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	return nil
}
