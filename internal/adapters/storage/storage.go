// Package storage holds errors shared by the per-collection stores.
package storage

import "errors"

// ErrNotFound is returned when no record matches a requested identifier.
var ErrNotFound = errors.New("record not found")
