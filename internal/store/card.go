package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
//
// Every method is a single-statement operation; no cross-card atomicity is
// provided beyond what the underlying store gives a single row write.
type CardStore interface {
	// Create saves a new card to the store, including its embedded checklist.
	// The card must be valid according to domain validation rules.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByOwner retrieves all cards belonging to the given owner,
	// oldest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Card, error)

	// ListByOwnerCreatedBetween retrieves the owner's cards whose CreatedAt
	// falls within [from, to], inclusive on both ends, oldest first.
	ListByOwnerCreatedBetween(
		ctx context.Context,
		ownerID uuid.UUID,
		from, to time.Time,
	) ([]*domain.Card, error)

	// UpdateState sets only the state of the identified card and returns the
	// updated card. Returns ErrCardNotFound if the card does not exist.
	UpdateState(ctx context.Context, id uuid.UUID, state domain.CardState) (*domain.Card, error)

	// UpdateChecklist replaces the identified card's checklist and returns
	// the updated card. Returns ErrCardNotFound if the card does not exist.
	UpdateChecklist(
		ctx context.Context,
		id uuid.UUID,
		checklist []domain.ChecklistItem,
	) (*domain.Card, error)

	// Replace overwrites all mutable fields of the identified card.
	// A replace on a non-existent ID is a silent no-op, not an error; the
	// board edit endpoint deliberately does not check existence first.
	Replace(ctx context.Context, card *domain.Card) error

	// Delete removes a card (and with it the embedded checklist) and returns
	// a snapshot of the deleted card.
	// Returns ErrCardNotFound if the card did not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}
