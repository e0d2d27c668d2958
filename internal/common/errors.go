package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Birthday errors
	ErrBirthdayNotFound = errors.New("birthday page not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Storage errors
	ErrStorage = errors.New("storage failure")

	// External AI collaborator errors (layout arrangement, text-to-speech)
	ErrAIService = errors.New("ai service failure")
)
