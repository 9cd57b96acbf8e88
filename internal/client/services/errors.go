// Package services contains the storefront application services. Every write
// path into the remote collaborator runs through the guard layer here:
// validation first, then (for auth) the rate limiter, then the remote call;
// failures surface as user-safe messages only.
package services

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/foodcourt/internal/common"
)

// ValidationError blocks submission of a malformed field. Message is safe to
// show inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

// RateLimitError blocks an authentication attempt until RetryAfter elapses.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	minutes := int(e.RetryAfter.Minutes())
	if e.RetryAfter > time.Duration(minutes)*time.Minute {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("Too many attempts. Please try again in %d minute(s).", minutes)
}

func (e *RateLimitError) Unwrap() error { return common.ErrRateLimited }

// RemoteError carries the sanitized, user-safe message for a remote failure.
// The raw cause stays attached for errors.Is matching but is never shown.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Unwrap() error { return e.Err }
