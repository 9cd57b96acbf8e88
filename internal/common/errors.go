// Package common defines shared constants and sentinel errors used across
// the storefront client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Guard-layer errors (resolved entirely client-side).
	ErrValidation  = errors.New("validation error")
	ErrRateLimited = errors.New("rate limited")

	// ErrBusy is returned when a user-triggered flow is re-entered while a
	// prior call is still in flight.
	ErrBusy = errors.New("operation already in progress")

	// ErrNotAuthenticated is returned by flows that require a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
)
