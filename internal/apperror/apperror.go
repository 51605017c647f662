// Package apperror defines the closed error taxonomy every store operation
// reports through. Services wrap driver-level failures into one of these kinds
// so that callers can branch with errors.Is and render a message, without ever
// seeing a raw GORM or SQLite error.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable means the database file could not be opened or
	// initialized. Fatal at startup.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorage is an unexpected read/write failure against an open store.
	// Multi-step writes are already rolled back when this surfaces.
	ErrStorage = errors.New("storage error")

	// ErrInsufficientStock means a stock decrement would drive the quantity
	// negative. Rejected before any row is written.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateKey is a unique-constraint violation (category name,
	// supplier GSTIN).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means user-supplied input failed type or requiredness
	// checks before reaching the store.
	ErrValidation = errors.New("validation failed")

	// ErrNoFieldsToUpdate means an update request carried no set fields.
	// A caller bug, not a storage condition.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// New wraps kind with a human-readable message. errors.Is(err, kind) stays true.
func New(kind error, msg string) error {
	return fmt.Errorf("%s: %w", msg, kind)
}

// Newf is New with formatting.
func Newf(kind error, format string, args ...interface{}) error {
	return New(kind, fmt.Sprintf(format, args...))
}
