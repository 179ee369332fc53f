package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty topic", domain.ErrEmptyTopic, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid filename", store.ErrInvalidFilename, http.StatusBadRequest},
		{"unknown kind", store.ErrUnknownKind, http.StatusBadRequest},
		{"file not found", store.ErrFileNotFound, http.StatusNotFound},
		{"rate limited", generation.ErrRateLimited, http.StatusTooManyRequests},
		{"retries exceeded", generation.ErrRetriesExceeded, http.StatusTooManyRequests},
		{"unavailable", generation.ErrUnavailable, http.StatusServiceUnavailable},
		{"generation failed", generation.ErrGenerationFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("context: %w", store.ErrFileNotFound), http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Topic is required", GetSafeErrorMessage(domain.ErrEmptyTopic))
	assert.Equal(t, "File not found", GetSafeErrorMessage(store.ErrFileNotFound))
	assert.Equal(t, "Content generation is not configured", GetSafeErrorMessage(generation.ErrUnavailable))

	// Raw upstream detail never leaks through.
	leaky := fmt.Errorf("%w: API key sk-12345", generation.ErrGenerationFailed)
	assert.Equal(t, "Content generation failed", GetSafeErrorMessage(leaky))
}
