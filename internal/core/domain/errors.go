package domain

import "errors"

// Cross-entity errors shared by the authorization chain and handlers.
var (
	// ErrUnauthorized is returned whenever an authorization predicate denies
	// a request: missing or unknown session token, ownership mismatch, or an
	// insufficient role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingFields is returned when a request omits required input.
	ErrMissingFields = errors.New("missing fields")
)
