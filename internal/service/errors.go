// Package service holds the business rules between the HTTP handlers and
// the repositories: reservation lifecycle, validation, notification
// dispatch and the external review sync. Error types defined here form
// the taxonomy handlers translate into HTTP responses.
package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the addressed record does not exist.
// Handlers translate it into a 404 envelope.
var ErrNotFound = errors.New("not found")

// ErrSyncUnavailable is returned by Sync when the Google client has no
// credentials or business location configured. Non-fatal: only the sync
// endpoint surfaces it, as a 400.
var ErrSyncUnavailable = errors.New("google reviews api not configured")

// ValidationError carries field-level messages for client-fixable input
// problems. Handlers translate it into a 400 envelope with the field map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// invalid builds a single-field ValidationError.
func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// SyncError wraps a transport or API failure during review sync.
type SyncError struct {
	Err error
}

func (e *SyncError) Error() string { return "review sync failed: " + e.Err.Error() }
func (e *SyncError) Unwrap() error { return e.Err }
