package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardOwnerEmpty is returned when a card's owner ID is empty or nil.
	ErrCardOwnerEmpty = errors.New("card owner ID cannot be empty")

	// ErrCardTitleEmpty is returned when a card's title is empty.
	ErrCardTitleEmpty = errors.New("card title cannot be empty")

	// ErrCardPriorityEmpty is returned when a card's priority is empty.
	ErrCardPriorityEmpty = errors.New("card priority cannot be empty")

	// ErrCardStateInvalid is returned when a card's state is not one of the
	// four board columns.
	ErrCardStateInvalid = errors.New("card state must be one of Backlog, To-do, In Progress, Done")

	// ErrChecklistEmpty is returned when a card is created without a checklist.
	ErrChecklistEmpty = errors.New("card checklist cannot be empty")

	// ErrChecklistItemDescriptionEmpty is returned when a checklist item has
	// no description.
	ErrChecklistItemDescriptionEmpty = errors.New("checklist item description cannot be empty")
)

// CardState is the board column a card currently sits in.
type CardState string

// The four board columns. No other value may be persisted.
const (
	StateBacklog    CardState = "Backlog"
	StateTodo       CardState = "To-do"
	StateInProgress CardState = "In Progress"
	StateDone       CardState = "Done"
)

// DefaultCardState is applied when a card is created without an explicit state.
const DefaultCardState = StateTodo

// IsValid reports whether the state is one of the four board columns.
func (s CardState) IsValid() bool {
	switch s {
	case StateBacklog, StateTodo, StateInProgress, StateDone:
		return true
	}
	return false
}

// Recognized priority labels. Priority is stored as free text; these are the
// values the counts aggregate buckets by (exact, case-sensitive match).
const (
	PriorityLow      = "low priority"
	PriorityModerate = "moderate priority"
	PriorityHigh     = "high priority"
)

// ChecklistItem is a sub-task embedded in a card. Items are not independently
// addressable outside their card, but their IDs are stable across updates so
// a targeted toggle can address a single item without rewriting the list.
type ChecklistItem struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Checked     bool      `json:"checked"`
}

// Card represents a single task/board entry owned by a user. The checklist
// is an ordered sequence owned exclusively by its card and is destroyed
// with it.
type Card struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Title     string          `json:"title"`
	Priority  string          `json:"priority"`
	State     CardState       `json:"state"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Checklist []ChecklistItem `json:"checklist"`
}

// NewCard creates a new Card with the given owner, title, priority and
// checklist. It generates a UUID for the card and for any checklist item
// that does not carry one, applies the default state when none is given,
// and defaults CreatedAt to the current time.
// Returns an error if validation fails.
func NewCard(
	ownerID uuid.UUID,
	title, priority string,
	state CardState,
	dueDate *time.Time,
	createdAt time.Time,
	items []ChecklistItem,
) (*Card, error) {
	if state == "" {
		state = DefaultCardState
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	checklist := make([]ChecklistItem, len(items))
	for i, item := range items {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		checklist[i] = ChecklistItem{
			ID:          id,
			Description: item.Description,
			Checked:     item.Checked,
		}
	}

	card := &Card{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Priority:  priority,
		State:     state,
		DueDate:   dueDate,
		CreatedAt: createdAt,
		Checklist: checklist,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.OwnerID == uuid.Nil {
		return ErrCardOwnerEmpty
	}

	if c.Title == "" {
		return ErrCardTitleEmpty
	}

	if c.Priority == "" {
		return ErrCardPriorityEmpty
	}

	if !c.State.IsValid() {
		return ErrCardStateInvalid
	}

	if len(c.Checklist) == 0 {
		return ErrChecklistEmpty
	}

	for _, item := range c.Checklist {
		if item.Description == "" {
			return ErrChecklistItemDescriptionEmpty
		}
	}

	return nil
}

// SetChecklistItemChecked sets the checked flag of the checklist item with
// the given ID. Item lookup is a linear scan; checklists are small.
// Returns false if no item with that ID exists on the card.
func (c *Card) SetChecklistItemChecked(itemID uuid.UUID, checked bool) bool {
	for i := range c.Checklist {
		if c.Checklist[i].ID == itemID {
			c.Checklist[i].Checked = checked
			return true
		}
	}
	return false
}
