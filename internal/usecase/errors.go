package usecase

import "errors"

// Sentinels returned by the services. Handlers map them to status codes with
// errors.Is, so wrapping must keep them in the chain.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("asset not found")
	ErrConflict              = errors.New("asset already exists")
	ErrDependencyUnavailable = errors.New("storage unavailable")
)
