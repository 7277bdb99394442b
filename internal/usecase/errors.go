package usecase

import "errors"

// Error taxonomy the handlers map onto HTTP statuses. Services wrap
// these with %w so errors.Is survives the message context.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)
