package shared_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promanage/promanage-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["message"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes the trace ID when present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/cards", nil)
		req = req.WithContext(shared.SetTraceID(req.Context()))
		rec := httptest.NewRecorder()

		shared.RespondWithError(rec, req, http.StatusNotFound, "Card not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Card not found", body["message"])
		assert.Len(t, body["trace_id"], 32, "trace ID is a 32-char hex string")
		assert.NotContains(t, body, "code", "internal code is never serialized")
	})

	t.Run("omits the trace ID when absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/cards", nil)
		rec := httptest.NewRecorder()

		shared.RespondWithError(rec, req, http.StatusBadRequest, "Invalid request format")

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotContains(t, body, "trace_id")
	})
}

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()

	ctx := shared.SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	first := shared.GetTraceID(ctx)
	assert.Len(t, first, 32)

	second := shared.GetTraceID(shared.SetTraceID(ctx))
	assert.NotEqual(t, first, second, "each call generates a fresh ID")

	assert.Empty(t, shared.GetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
