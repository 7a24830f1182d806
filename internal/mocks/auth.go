package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/service/auth"
)

// MockJWTService is a configurable implementation of auth.JWTService.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string
	// UserID is returned in the claims by ValidateToken when Err is nil.
	UserID uuid.UUID
	// Err, when set, is returned by both methods.
	Err error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements auth.JWTService.ValidateToken
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &auth.Claims{UserID: m.UserID}, nil
}

// MockPasswordHasher is a PasswordHasher that prefixes instead of hashing.
type MockPasswordHasher struct {
	// Err, when set, is returned by Hash.
	Err error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.Hash
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier is a PasswordVerifier with a fixed outcome.
type MockPasswordVerifier struct {
	ShouldSucceed bool
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.Compare
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
