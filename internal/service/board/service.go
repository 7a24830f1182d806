// Package board implements the task query/update service: creation, windowed
// retrieval, partial updates, deletion and aggregate counting of board cards.
//
// The service enforces domain validation but not ownership: the HTTP layer
// authenticates callers, and any authenticated caller may mutate any card by
// id, matching the system's documented authorization model.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/domain"
	"github.com/promanage/promanage-api/internal/store"
)

// Service coordinates card operations over a CardStore.
type Service struct {
	cardStore store.CardStore
	logger    *slog.Logger
	timeFunc  func() time.Time // Injectable for testing window computation
}

// NewService creates a new board Service with the given card store.
// If logger is nil, a default logger will be used.
func NewService(cardStore store.CardStore, logger *slog.Logger) *Service {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		cardStore: cardStore,
		logger:    logger.With(slog.String("component", "board_service")),
		timeFunc:  time.Now,
	}
}

// CreateCardParams carries the fields needed to create a card. State,
// DueDate and CreatedAt are optional; zero values get defaults in the
// domain constructor.
type CreateCardParams struct {
	OwnerID   uuid.UUID
	Title     string
	Priority  string
	State     domain.CardState
	DueDate   *time.Time
	CreatedAt time.Time
	Checklist []domain.ChecklistItem
}

// CreateCard validates the parameters, builds a new card and persists it.
// Returns the created card.
func (s *Service) CreateCard(ctx context.Context, params CreateCardParams) (*domain.Card, error) {
	card, err := domain.NewCard(
		params.OwnerID,
		params.Title,
		params.Priority,
		params.State,
		params.DueDate,
		params.CreatedAt,
		params.Checklist,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.logger.Debug("card created",
		"card_id", card.ID,
		"owner_id", card.OwnerID,
		"state", card.State)

	return card, nil
}

// ListByOwnerAndWindow returns the owner's cards whose creation time falls
// within the window named by filter (today, thisMonth, or the last-7-days
// default). Both window ends are inclusive.
func (s *Service) ListByOwnerAndWindow(
	ctx context.Context,
	ownerID uuid.UUID,
	filter string,
) ([]*domain.Card, error) {
	window := WindowForFilter(filter, s.timeFunc())

	cards, err := s.cardStore.ListByOwnerCreatedBetween(ctx, ownerID, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// ToggleChecklistItem sets the checked flag of one checklist item on the
// identified card and returns the updated card.
// Returns store.ErrCardNotFound or store.ErrChecklistItemNotFound when
// either id fails to resolve. The operation is idempotent.
func (s *Service) ToggleChecklistItem(
	ctx context.Context,
	cardID, itemID uuid.UUID,
	checked bool,
) (*domain.Card, error) {
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if !card.SetChecklistItemChecked(itemID, checked) {
		return nil, store.ErrChecklistItemNotFound
	}

	updated, err := s.cardStore.UpdateChecklist(ctx, cardID, card.Checklist)
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist: %w", err)
	}

	s.logger.Debug("checklist item toggled",
		"card_id", cardID,
		"item_id", itemID,
		"checked", checked)

	return updated, nil
}

// SetState moves a card to another board column and returns the updated
// card. The state must be one of the four board columns; anything else
// fails validation before any write happens.
func (s *Service) SetState(
	ctx context.Context,
	cardID uuid.UUID,
	state domain.CardState,
) (*domain.Card, error) {
	if !state.IsValid() {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrCardStateInvalid)
	}

	card, err := s.cardStore.UpdateState(ctx, cardID, state)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("card state updated", "card_id", cardID, "state", state)

	return card, nil
}

// EditCard replaces all mutable fields of the identified card. Checklist
// items without an id get a fresh one; items that keep their id keep their
// identity across the edit.
//
// An edit on a non-existent id succeeds without writing anything. The
// original system behaved this way and its clients depend on it, so it is
// kept as explicit policy rather than fixed.
func (s *Service) EditCard(
	ctx context.Context,
	cardID uuid.UUID,
	params CreateCardParams,
) error {
	card, err := domain.NewCard(
		params.OwnerID,
		params.Title,
		params.Priority,
		params.State,
		params.DueDate,
		params.CreatedAt,
		params.Checklist,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	card.ID = cardID

	if err := s.cardStore.Replace(ctx, card); err != nil {
		return fmt.Errorf("failed to edit card: %w", err)
	}

	s.logger.Debug("card edited", "card_id", cardID)

	return nil
}

// DeleteCard removes a card and returns a snapshot of what was deleted.
// Returns store.ErrCardNotFound if the card did not exist. The embedded
// checklist is destroyed with its card; nothing else cascades.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	card, err := s.cardStore.Delete(ctx, cardID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("card deleted", "card_id", cardID, "owner_id", card.OwnerID)

	return card, nil
}

// GetCard returns the card with the given id.
// Returns store.ErrCardNotFound if it does not exist.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	return s.cardStore.GetByID(ctx, cardID)
}

// Counts aggregates an owner's cards by state, by recognized priority label
// and by due-date presence.
type Counts struct {
	Backlog          int `json:"backlog"`
	Todo             int `json:"todo"`
	InProgress       int `json:"inProgress"`
	Completed        int `json:"completed"`
	LowPriority      int `json:"lowPriority"`
	ModeratePriority int `json:"moderatePriority"`
	HighPriority     int `json:"highPriority"`
	DueDateTasks     int `json:"dueDateTasks"`
}

// CountsByOwner loads all of the owner's cards and tallies them in a single
// pass. The four state buckets always sum to the total number of cards; the
// priority buckets only count cards whose priority exactly matches one of
// the three recognized labels, so free-text priorities outside that set are
// invisible here.
func (s *Service) CountsByOwner(ctx context.Context, ownerID uuid.UUID) (*Counts, error) {
	cards, err := s.cardStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards for counts: %w", err)
	}

	var counts Counts
	for _, card := range cards {
		switch card.State {
		case domain.StateBacklog:
			counts.Backlog++
		case domain.StateTodo:
			counts.Todo++
		case domain.StateInProgress:
			counts.InProgress++
		case domain.StateDone:
			counts.Completed++
		}

		switch card.Priority {
		case domain.PriorityLow:
			counts.LowPriority++
		case domain.PriorityModerate:
			counts.ModeratePriority++
		case domain.PriorityHigh:
			counts.HighPriority++
		}

		if card.DueDate != nil {
			counts.DueDateTasks++
		}
	}

	return &counts, nil
}
