package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/promanage/promanage-api/internal/config"
	"github.com/promanage/promanage-api/internal/platform/postgres"
	"github.com/promanage/promanage-api/internal/service/auth"
	"github.com/promanage/promanage-api/internal/service/board"
	"github.com/promanage/promanage-api/internal/store"
)

// application bundles the configured dependencies of the running server.
// Stores and services are injected here at construction; nothing holds a
// process-wide connection singleton.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	cardStore        store.CardStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	boardService     *board.Service
}

// newApplication wires up stores and services over the given database
// connection. Returns an error if any component cannot be constructed.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		cardStore:        cardStore,
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
		boardService:     board.NewService(cardStore, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
