package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTopic is returned when a topic is empty after trimming.
	ErrEmptyTopic = errors.New("topic is required")
)
