package domain

import "errors"

// Sentinel errors for request validation. Handlers translate these into
// HTTP status codes and user-facing messages.
var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrMissingFields  = errors.New("missing required fields")
)
