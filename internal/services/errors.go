package services

import "errors"

// Failure kinds surfaced to controllers. Services wrap these with context via
// fmt.Errorf("...: %w", ...) so handlers can classify with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
)
