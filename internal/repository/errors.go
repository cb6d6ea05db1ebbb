// Package repository contains thin database/sql wrappers over the MySQL
// tables. Sentinel errors defined here let higher layers distinguish
// failure scenarios without inspecting driver error strings themselves.
// Lookups that find nothing return sql.ErrNoRows unchanged.
package repository

import (
	"errors"
	"strings"
)

// ErrCodeExists is returned when inserting a reservation whose generated
// confirmation code collides with an existing row. The unique index on
// confirmation_code is the actual correctness guarantee for concurrent
// creations; callers regenerate the code and retry.
var ErrCodeExists = errors.New("confirmation code already exists")

// ErrEmailExists is returned when creating a user with a taken email.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicateReview is returned when inserting a review whose external
// google_review_id is already stored. The sync treats this as
// already-imported, not as a failure.
var ErrDuplicateReview = errors.New("review already exists")

// ErrCategoryNotEmpty is returned when deleting a category that still
// contains menu items.
var ErrCategoryNotEmpty = errors.New("category still has items")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error number 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
