// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyNombre is returned when a required nombre field is empty.
	ErrEmptyNombre = errors.New("nombre cannot be empty")

	// ErrEmptyEmail is returned when a required email field is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")
)
