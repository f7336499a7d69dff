package store

import "errors"

// ErrNotFound is returned when a referenced record does not exist. Callers
// wrap it with entity context and the boundary maps it to HTTP 404.
var ErrNotFound = errors.New("record not found")

// ErrNoFields is returned when an update carries nothing to change.
var ErrNoFields = errors.New("no fields to update")
