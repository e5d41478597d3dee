// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Catalog errors.
var (
	// ErrCatalogIO indicates the backing catalog file could not be opened or read.
	// A load failing with this error leaves no catalog available.
	ErrCatalogIO = errors.New("catalog io error")

	// ErrEmptyCatalog indicates an operation needs at least one entry but the catalog has none.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Transport errors.
var (
	// ErrUpdatesClosed indicates the Telegram update channel was closed by the client.
	ErrUpdatesClosed = errors.New("bot update channel closed")
)

// Validation errors.
var (
	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCommand indicates a bot command that is not supported.
	ErrUnknownCommand = errors.New("unknown command")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
