// Package common defines shared constants and sentinel errors used across
// the love story engine. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/registry-level errors.
	ErrNotFound         = errors.New("not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrProtectedDefault = errors.New("protected default item")

	// Storage-level errors.
	ErrStorageUnavailable = errors.New("local store unavailable")

	// Snapshot import errors.
	ErrInvalidSnapshot = errors.New("invalid snapshot payload")
	ErrImportCancelled = errors.New("import cancelled")
)
