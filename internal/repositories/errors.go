package repositories

import "errors"

// Storage error kinds. Handlers switch on these with errors.Is instead of
// inspecting error text.
var (
	// ErrNotFound is returned when no record matches the given identity or key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)
