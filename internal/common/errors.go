// Package common defines shared constants and sentinel errors used across
// the chat backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors, carried inside the dbx.ExecResult envelope.
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrStore     = errors.New("store error")

	// Validation errors, detected before any store call.
	ErrValidation = errors.New("validation error")

	// Authentication/authorization errors. ErrInvalidCredentials is the one
	// uniform failure for every credential problem and must not be refined.
	ErrInvalidCredentials = errors.New("could not validate credentials")
	ErrForbidden          = errors.New("forbidden")
)
