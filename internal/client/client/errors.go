package client

import "errors"

// Sentinel failure modes of the remote collaborator. Their texts double as
// the patterns the error sanitizer matches on, so they must stay stable.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("user already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNetwork            = errors.New("network request failed")
	ErrNotFound           = errors.New("document not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionExpired     = errors.New("session expired")
)
