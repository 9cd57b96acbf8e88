// Package common contains shared constants and sentinel errors used across
// storefront client components.
package common

const (
	// SessionHeaderName is the HTTP header used to carry the session token on
	// outbound requests to the remote service.
	SessionHeaderName = "X-Session-Token"

	// ProjectHeaderName identifies the storefront project on every request.
	ProjectHeaderName = "X-Project-Id"

	// APIKeyHeaderName carries the optional server API key used by seeding.
	APIKeyHeaderName = "X-Api-Key"
)
