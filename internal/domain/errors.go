package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProductNotFound is returned when no product matches an inventory query
	ErrProductNotFound = errors.New("product not found in inventory")

	// ErrSessionNotFound is returned when a session token is unknown or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionUnavailable is returned when the session store cannot be reached.
	// Recommendation responses must never depend on session recording succeeding.
	ErrSessionUnavailable = errors.New("session store unavailable")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
