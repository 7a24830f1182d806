package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name            string `json:"name"            validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// ChangePasswordRequest defines the payload for the password rotation
// endpoint. The endpoint also renames the user; both behaviours are part of
// the original contract.
type ChangePasswordRequest struct {
	Name        string `json:"name"        validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
	NewName     string `json:"newName"     validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Name    string    `json:"name"`
	ID      uuid.UUID `json:"id"`
}

// MessageResponse is the plain acknowledgment body used by endpoints that
// return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps an entity (or list) under a data key.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ChecklistItemPayload is one checklist entry in a card create/edit payload.
// The ID is optional: new items get a generated one, items carrying their
// existing ID keep their identity across edits.
type ChecklistItemPayload struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description" validate:"required"`
	Checked     bool   `json:"checked"`
}

// CardRequest defines the payload for card creation and full edit. Title,
// priority, checklist and owner are required; state, dueDate and createdAt
// are optional and defaulted server-side.
type CardRequest struct {
	Title     string                 `json:"title"               validate:"required"`
	Priority  string                 `json:"priority"            validate:"required"`
	State     string                 `json:"state,omitempty"`
	DueDate   *time.Time             `json:"dueDate,omitempty"`
	CreatedAt *time.Time             `json:"createdAt,omitempty"`
	Checklist []ChecklistItemPayload `json:"tasks"               validate:"required,min=1,dive"`
	Owner     string                 `json:"owner"               validate:"required,uuid"`
}

// ToggleChecklistItemRequest defines the payload for the checklist toggle
// endpoint. Checked is a pointer so that an explicit false is
// distinguishable from an absent field.
type ToggleChecklistItemRequest struct {
	Checked *bool `json:"checked" validate:"required"`
}

// SetStateRequest defines the payload for the card state update endpoint.
type SetStateRequest struct {
	State string `json:"state" validate:"required"`
}

// DeleteCardResponse acknowledges a deletion and carries a snapshot of the
// removed card.
type DeleteCardResponse struct {
	Message     string      `json:"message"`
	DeletedCard interface{} `json:"deletedCard"`
}
