package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; the store never sees plaintext credentials.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByName retrieves a user by their display name.
	// Returns ErrUserNotFound if the user does not exist.
	// Names are not unique; the first match wins, as in the original system.
	GetByName(ctx context.Context, name string) (*domain.User, error)

	// Update modifies an existing user's name and hashed password.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error
}
