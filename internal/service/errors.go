package service

import "errors"

// Service-level errors. Handlers map these onto HTTP statuses
var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("trip not found")
	ErrForbidden     = errors.New("access denied to this trip")
	ErrNotInProgress = errors.New("trip is not in progress")
)
