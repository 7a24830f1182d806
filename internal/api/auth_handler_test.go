package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/api"
	"github.com/promanage/promanage-api/internal/domain"
	"github.com/promanage/promanage-api/internal/mocks"
	"github.com/promanage/promanage-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authHandlerFixture struct {
	handler    *api.AuthHandler
	userStore  *mocks.MockUserStore
	jwtService *mocks.MockJWTService
	verifier   *mocks.MockPasswordVerifier
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Token: "test-token"}
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}

	return &authHandlerFixture{
		handler:    api.NewAuthHandler(userStore, jwtService, &mocks.MockPasswordHasher{}, verifier, nil),
		userStore:  userStore,
		jwtService: jwtService,
		verifier:   verifier,
	}
}

// seedUser stores a user the way registration would, with a mock-hashed
// password.
func (f *authHandlerFixture) seedUser(t *testing.T, name, email, password string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(name, email, password)
	require.NoError(t, err)
	user.HashedPassword = "hashed:" + password
	user.Password = ""
	require.NoError(t, f.userStore.Create(context.Background(), user))
	return user
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	t.Parallel()

	validPayload := func() map[string]string {
		return map[string]string{
			"name":            "Alex",
			"email":           "alex@example.com",
			"password":        "password123",
			"confirmPassword": "password123",
		}
	}

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		rec := postJSON(t, f.handler.Register, "/api/v1/auth/register", validPayload())

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "user created successfully", body["message"])
		assert.Equal(t, "test-token", body["token"])
		assert.Equal(t, "Alex", body["name"])
		assert.NotEmpty(t, body["id"])

		stored, err := f.userStore.GetByEmail(context.Background(), "alex@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:password123", stored.HashedPassword, "password is hashed before storage")
		assert.Empty(t, stored.Password, "plaintext is dropped")
	})

	t.Run("password confirmation mismatch returns 401", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		payload := validPayload()
		payload["confirmPassword"] = "different123"
		rec := postJSON(t, f.handler.Register, "/api/v1/auth/register", payload)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Password not matched", decodeBody(t, rec)["message"])
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		f.seedUser(t, "Existing", "alex@example.com", "password123")

		rec := postJSON(t, f.handler.Register, "/api/v1/auth/register", validPayload())

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "User already exists", decodeBody(t, rec)["message"])
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			mutate func(map[string]string)
		}{
			{"missing name", func(p map[string]string) { delete(p, "name") }},
			{"bad email", func(p map[string]string) { p["email"] = "not-an-email" }},
			{"short password", func(p map[string]string) { p["password"] = "short"; p["confirmPassword"] = "short" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				f := newAuthHandlerFixture(t)
				payload := validPayload()
				tt.mutate(payload)
				rec := postJSON(t, f.handler.Register, "/api/v1/auth/register", payload)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		req := httptest.NewRequest(
			http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		f.handler.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		f.userStore.Err = assert.AnError
		rec := postJSON(t, f.handler.Register, "/api/v1/auth/register", validPayload())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("successful login", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		user := f.seedUser(t, "Alex", "alex@example.com", "password123")

		rec := postJSON(t, f.handler.Login, "/api/v1/auth/login", map[string]string{
			"email":    "alex@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "user logged in successfully", body["message"])
		assert.Equal(t, "test-token", body["token"])
		assert.Equal(t, user.ID.String(), body["id"])
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		rec := postJSON(t, f.handler.Login, "/api/v1/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})

	t.Run("wrong password returns the same 401", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		f.seedUser(t, "Alex", "alex@example.com", "password123")
		f.verifier.ShouldSucceed = false

		rec := postJSON(t, f.handler.Login, "/api/v1/auth/login", map[string]string{
			"email":    "alex@example.com",
			"password": "wrongpassword",
		})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"],
			"wrong password is indistinguishable from unknown email")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		rec := postJSON(t, f.handler.Login, "/api/v1/auth/login", map[string]string{
			"email": "alex@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	validPayload := func() map[string]string {
		return map[string]string{
			"name":        "Alex",
			"oldPassword": "password123",
			"newPassword": "newpassword456",
			"newName":     "Alexandra",
		}
	}

	t.Run("rotates password and renames the user", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		user := f.seedUser(t, "Alex", "alex@example.com", "password123")

		rec := postJSON(t, f.handler.ChangePassword, "/api/v1/auth/changePassword", validPayload())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password changed successfully", decodeBody(t, rec)["message"])

		updated, err := f.userStore.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alexandra", updated.Name)
		assert.Equal(t, "hashed:newpassword456", updated.HashedPassword)
	})

	t.Run("unknown name returns 404", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		rec := postJSON(t, f.handler.ChangePassword, "/api/v1/auth/changePassword", validPayload())

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeBody(t, rec)["message"])
	})

	t.Run("wrong old password returns 401", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		user := f.seedUser(t, "Alex", "alex@example.com", "password123")
		f.verifier.ShouldSucceed = false

		rec := postJSON(t, f.handler.ChangePassword, "/api/v1/auth/changePassword", validPayload())

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Incorrect old password", decodeBody(t, rec)["message"])

		unchanged, err := f.userStore.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alex", unchanged.Name, "nothing is updated on failure")
	})

	t.Run("short new password returns 400", func(t *testing.T) {
		t.Parallel()

		f := newAuthHandlerFixture(t)
		f.seedUser(t, "Alex", "alex@example.com", "password123")

		payload := validPayload()
		payload["newPassword"] = "short"
		rec := postJSON(t, f.handler.ChangePassword, "/api/v1/auth/changePassword", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// Guard against the store sentinel and the HTTP mapping drifting apart.
func TestRegisterEmailConflictUsesStoreSentinel(t *testing.T) {
	t.Parallel()

	f := newAuthHandlerFixture(t)
	user, err := domain.NewUser("Taken", "taken@example.com", "password123")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password123"
	user.Password = ""
	require.NoError(t, f.userStore.Create(context.Background(), user))

	err = f.userStore.Create(context.Background(), &domain.User{
		ID:             uuid.New(),
		Name:           "Other",
		Email:          "taken@example.com",
		HashedPassword: "hashed:whatever1",
	})
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.True(t, store.IsDuplicateError(err))
}
