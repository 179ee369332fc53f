package store

import "errors"

// Common store errors.
var (
	// ErrFileNotFound is returned when a requested artifact does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFilename is returned when a filename is empty or attempts
	// to escape the artifact directory.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrUnknownKind is returned when a content kind is not one of
	// code, audio, or image.
	ErrUnknownKind = errors.New("unknown artifact kind")
)
