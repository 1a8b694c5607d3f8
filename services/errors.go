package services

import "errors"

// Common service-level errors
var (
	ErrNoteNotFound = errors.New("note not found")
)
