// Package storage holds errors shared by every repository implementation.
package storage

import "errors"

// ErrDuplicateKey is returned when a write violates a unique constraint.
// Sync code treats it as "another writer got there first".
var ErrDuplicateKey = errors.New("duplicate key")
