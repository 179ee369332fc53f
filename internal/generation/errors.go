package generation

import "errors"

// Common errors returned by the generation boundary.
var (
	// ErrGenerationFailed is returned when content generation fails for any
	// general reason.
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrRateLimited is returned when the model reports quota exhaustion or
	// HTTP 429. Calls failing with this error are retried with backoff.
	ErrRateLimited = errors.New("rate limited by language model")

	// ErrRetriesExceeded is returned when every retry attempt was consumed
	// without a successful response.
	ErrRetriesExceeded = errors.New("max retries exceeded for API call")

	// ErrInvalidResponse is returned when the model response is empty or
	// cannot be interpreted.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrNoImageData is returned when an image model response carries no
	// inline image bytes.
	ErrNoImageData = errors.New("no image data in model response")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrUnavailable is returned when no generator is configured, typically
	// because the API key is missing.
	ErrUnavailable = errors.New("generation service is not configured")
)
