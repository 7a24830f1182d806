package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/domain"
	"github.com/promanage/promanage-api/internal/store"
)

// MockCardStore is an in-memory implementation of store.CardStore with the
// same observable semantics as the PostgreSQL implementation, including the
// silent no-op Replace. Set Err to force every call to fail with that error.
type MockCardStore struct {
	mu    sync.Mutex
	cards map[uuid.UUID]*domain.Card

	Err error
}

// NewMockCardStore creates an empty MockCardStore.
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{
		cards: make(map[uuid.UUID]*domain.Card),
	}
}

var _ store.CardStore = (*MockCardStore)(nil)

// copyCard returns a deep copy so callers cannot mutate stored state.
func copyCard(card *domain.Card) *domain.Card {
	copied := *card
	copied.Checklist = make([]domain.ChecklistItem, len(card.Checklist))
	copy(copied.Checklist, card.Checklist)
	if card.DueDate != nil {
		due := *card.DueDate
		copied.DueDate = &due
	}
	return &copied
}

// Create implements store.CardStore.Create
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cards[card.ID] = copyCard(card)
	return nil
}

// GetByID implements store.CardStore.GetByID
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return copyCard(card), nil
}

// ListByOwner implements store.CardStore.ListByOwner
func (m *MockCardStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cards := []*domain.Card{}
	for _, card := range m.cards {
		if card.OwnerID == ownerID {
			cards = append(cards, copyCard(card))
		}
	}
	sortByCreatedAt(cards)
	return cards, nil
}

// ListByOwnerCreatedBetween implements store.CardStore.ListByOwnerCreatedBetween
func (m *MockCardStore) ListByOwnerCreatedBetween(
	ctx context.Context,
	ownerID uuid.UUID,
	from, to time.Time,
) ([]*domain.Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cards := []*domain.Card{}
	for _, card := range m.cards {
		if card.OwnerID != ownerID {
			continue
		}
		if card.CreatedAt.Before(from) || card.CreatedAt.After(to) {
			continue
		}
		cards = append(cards, copyCard(card))
	}
	sortByCreatedAt(cards)
	return cards, nil
}

// UpdateState implements store.CardStore.UpdateState
func (m *MockCardStore) UpdateState(
	ctx context.Context,
	id uuid.UUID,
	state domain.CardState,
) (*domain.Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	card.State = state
	return copyCard(card), nil
}

// UpdateChecklist implements store.CardStore.UpdateChecklist
func (m *MockCardStore) UpdateChecklist(
	ctx context.Context,
	id uuid.UUID,
	checklist []domain.ChecklistItem,
) (*domain.Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	card.Checklist = make([]domain.ChecklistItem, len(checklist))
	copy(card.Checklist, checklist)
	return copyCard(card), nil
}

// Replace implements store.CardStore.Replace
func (m *MockCardStore) Replace(ctx context.Context, card *domain.Card) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Matching the real store: replacing a missing card is a silent no-op.
	if _, ok := m.cards[card.ID]; !ok {
		return nil
	}
	m.cards[card.ID] = copyCard(card)
	return nil
}

// Delete implements store.CardStore.Delete
func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	delete(m.cards, id)
	return card, nil
}

func sortByCreatedAt(cards []*domain.Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
}
