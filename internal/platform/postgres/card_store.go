package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/domain"
	"github.com/promanage/promanage-api/internal/store"
)

// cardColumns is the column list shared by every card query.
const cardColumns = "id, owner_id, title, priority, state, due_date, created_at, checklist"

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
// The checklist is persisted as a JSONB array on the card row, so every
// operation here is a single statement against one row.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	checklist, err := json.Marshal(card.Checklist)
	if err != nil {
		return store.NewStoreError("card", "create", "marshal checklist", err)
	}

	query := `
		INSERT INTO cards (id, owner_id, title, priority, state, due_date, created_at, checklist)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = s.db.ExecContext(ctx, query,
		card.ID,
		card.OwnerID,
		card.Title,
		card.Priority,
		card.State,
		card.DueDate,
		card.CreatedAt,
		checklist,
	)
	if err != nil {
		s.logger.Error("failed to create card", "error", err, "card_id", card.ID)
		return store.NewStoreError("card", "create", "insert failed", err)
	}

	return nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		s.logger.Error("failed to get card", "error", err, "card_id", id)
		return nil, store.NewStoreError("card", "get", "query failed", err)
	}

	return card, nil
}

// ListByOwner implements store.CardStore.ListByOwner
func (s *PostgresCardStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`
	return s.listCards(ctx, query, ownerID)
}

// ListByOwnerCreatedBetween implements store.CardStore.ListByOwnerCreatedBetween
func (s *PostgresCardStore) ListByOwnerCreatedBetween(
	ctx context.Context,
	ownerID uuid.UUID,
	from, to time.Time,
) ([]*domain.Card, error) {
	// BETWEEN is inclusive on both ends, matching the listing window contract.
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE owner_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at ASC
	`
	return s.listCards(ctx, query, ownerID, from, to)
}

// listCards runs a multi-row card query and scans all results.
func (s *PostgresCardStore) listCards(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Card, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to query cards", "error", err)
		return nil, store.NewStoreError("card", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			s.logger.Error("failed to scan card row", "error", err)
			return nil, store.NewStoreError("card", "list", "scan failed", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("error iterating card rows", "error", err)
		return nil, store.NewStoreError("card", "list", "row iteration failed", err)
	}

	return cards, nil
}

// UpdateState implements store.CardStore.UpdateState
func (s *PostgresCardStore) UpdateState(
	ctx context.Context,
	id uuid.UUID,
	state domain.CardState,
) (*domain.Card, error) {
	query := `
		UPDATE cards
		SET state = $1
		WHERE id = $2
		RETURNING ` + cardColumns

	card, err := scanCard(s.db.QueryRowContext(ctx, query, state, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		s.logger.Error("failed to update card state", "error", err, "card_id", id)
		return nil, store.NewStoreError("card", "update_state", "update failed", err)
	}

	return card, nil
}

// UpdateChecklist implements store.CardStore.UpdateChecklist
func (s *PostgresCardStore) UpdateChecklist(
	ctx context.Context,
	id uuid.UUID,
	checklist []domain.ChecklistItem,
) (*domain.Card, error) {
	encoded, err := json.Marshal(checklist)
	if err != nil {
		return nil, store.NewStoreError("card", "update_checklist", "marshal checklist", err)
	}

	query := `
		UPDATE cards
		SET checklist = $1
		WHERE id = $2
		RETURNING ` + cardColumns

	card, err := scanCard(s.db.QueryRowContext(ctx, query, encoded, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		s.logger.Error("failed to update card checklist", "error", err, "card_id", id)
		return nil, store.NewStoreError("card", "update_checklist", "update failed", err)
	}

	return card, nil
}

// Replace implements store.CardStore.Replace
//
// Note: a replace that matches no row succeeds without touching anything.
// The edit endpoint relies on this; see the CardStore interface docs.
func (s *PostgresCardStore) Replace(ctx context.Context, card *domain.Card) error {
	checklist, err := json.Marshal(card.Checklist)
	if err != nil {
		return store.NewStoreError("card", "replace", "marshal checklist", err)
	}

	query := `
		UPDATE cards
		SET owner_id = $1, title = $2, priority = $3, state = $4,
		    due_date = $5, created_at = $6, checklist = $7
		WHERE id = $8
	`

	_, err = s.db.ExecContext(ctx, query,
		card.OwnerID,
		card.Title,
		card.Priority,
		card.State,
		card.DueDate,
		card.CreatedAt,
		checklist,
		card.ID,
	)
	if err != nil {
		s.logger.Error("failed to replace card", "error", err, "card_id", card.ID)
		return store.NewStoreError("card", "replace", "update failed", err)
	}

	return nil
}

// Delete implements store.CardStore.Delete
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := `DELETE FROM cards WHERE id = $1 RETURNING ` + cardColumns

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		s.logger.Error("failed to delete card", "error", err, "card_id", id)
		return nil, store.NewStoreError("card", "delete", "delete failed", err)
	}

	return card, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCard scans a single card row, decoding the JSONB checklist.
func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	var dueDate sql.NullTime
	var checklist []byte

	err := row.Scan(
		&card.ID,
		&card.OwnerID,
		&card.Title,
		&card.Priority,
		&card.State,
		&dueDate,
		&card.CreatedAt,
		&checklist,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		card.DueDate = &dueDate.Time
	}

	if err := json.Unmarshal(checklist, &card.Checklist); err != nil {
		return nil, err
	}

	return &card, nil
}
