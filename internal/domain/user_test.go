package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("Alex", "alex@example.com", "password123")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Alex", user.Name)
		assert.Equal(t, "alex@example.com", user.Email)
		assert.Equal(t, "password123", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "empty name",
			userName: "",
			email:    "alex@example.com",
			password: "password123",
			wantErr:  domain.ErrEmptyUserName,
		},
		{
			name:     "empty email",
			userName: "Alex",
			email:    "",
			password: "password123",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			userName: "Alex",
			email:    "alex.example.com",
			password: "password123",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			userName: "Alex",
			email:    "alex@example",
			password: "password123",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "password too short",
			userName: "Alex",
			email:    "alex@example.com",
			password: "short",
			wantErr:  domain.ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			userName: "Alex",
			email:    "alex@example.com",
			password: strings.Repeat("a", 73),
			wantErr:  domain.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewUser(tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	t.Run("stored user with only a hash is valid", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{
			ID:             uuid.New(),
			Name:           "Alex",
			Email:          "alex@example.com",
			HashedPassword: "$2a$10$somethinghashed",
		}
		assert.NoError(t, user.Validate())
	})

	t.Run("neither password nor hash", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{
			ID:    uuid.New(),
			Name:  "Alex",
			Email: "alex@example.com",
		}
		assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
	})

	t.Run("nil ID", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{
			Name:     "Alex",
			Email:    "alex@example.com",
			Password: "password123",
		}
		assert.ErrorIs(t, user.Validate(), domain.ErrEmptyUserID)
	})
}
