package database

import "errors"

// Storage errors. Driver errors are wrapped underneath these.
var (
	// ErrStorageUnavailable means the database could not be opened or its
	// schema could not be created. Nothing else should run after it.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrStorageWrite = errors.New("storage write failed")
	ErrStorageRead  = errors.New("storage read failed")
)
