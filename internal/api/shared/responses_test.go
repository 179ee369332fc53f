package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Run("without trace ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusBadRequest, "No data provided")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "No data provided"}`, w.Body.String())
	})

	t.Run("with trace ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(SetTraceID(req.Context()))
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusNotFound, "File not found")

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "File not found", resp.Error)
		assert.Equal(t, GetTraceID(req.Context()), resp.TraceID)
		assert.NotEmpty(t, resp.TraceID)
	})
}
