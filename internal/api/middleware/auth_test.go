package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/api/middleware"
	"github.com/promanage/promanage-api/internal/mocks"
	"github.com/promanage/promanage-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	// next records whether the protected handler ran and what user ID it saw.
	newNext := func(called *bool, seenID *uuid.UUID) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			if id, ok := middleware.GetUserID(r); ok {
				*seenID = id
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid token passes through with user ID", func(t *testing.T) {
		t.Parallel()

		m := middleware.NewAuthMiddleware(&mocks.MockJWTService{UserID: userID})

		var called bool
		var seenID uuid.UUID
		handler := m.Authenticate(newNext(&called, &seenID))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some-valid-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Equal(t, userID, seenID)
	})

	tests := []struct {
		name       string
		authHeader string
		jwtErr     error
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no token after scheme",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired-token",
			jwtErr:     auth.ErrExpiredToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			jwtErr:     auth.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected validation failure",
			authHeader: "Bearer some-token",
			jwtErr:     assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := middleware.NewAuthMiddleware(&mocks.MockJWTService{
				UserID: userID,
				Err:    tt.jwtErr,
			})

			var called bool
			var seenID uuid.UUID
			handler := m.Authenticate(newNext(&called, &seenID))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, called, "protected handler must not run")
		})
	}
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.GetUserID(req)
	assert.False(t, ok)
}
