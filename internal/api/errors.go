package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, store.ErrInvalidFilename),
		errors.Is(err, store.ErrUnknownKind):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrFileNotFound):
		return http.StatusNotFound

	// Upstream pressure
	case errors.Is(err, generation.ErrRateLimited),
		errors.Is(err, generation.ErrRetriesExceeded):
		return http.StatusTooManyRequests

	// Misconfiguration
	case errors.Is(err, generation.ErrUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. Raw error strings from upstream services never reach
// the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyTopic):
		return "Topic is required"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	case errors.Is(err, store.ErrFileNotFound):
		return "File not found"

	case errors.Is(err, store.ErrInvalidFilename):
		return "Invalid filename"

	case errors.Is(err, store.ErrUnknownKind):
		return "Unknown file type"

	case errors.Is(err, generation.ErrRetriesExceeded),
		errors.Is(err, generation.ErrRateLimited):
		return "The AI service is rate limited, please try again shortly"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The AI service declined to generate this content"

	case errors.Is(err, generation.ErrUnavailable):
		return "Content generation is not configured"

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrNoImageData):
		return "Content generation failed"

	default:
		return "An unexpected error occurred"
	}
}
