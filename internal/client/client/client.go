// Package client defines the narrow boundary to the remote account/document
// service and its REST implementation. Everything above this package treats
// the collaborator as opaque and matches failures with errors.Is against the
// sentinels in errors.go.
package client

import (
	"context"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
)

// Filter is an equality constraint on a document field.
type Filter struct {
	Field string
	Value string
}

// Equal builds an equality filter.
func Equal(field, value string) Filter {
	return Filter{Field: field, Value: value}
}

// Client is the remote collaborator boundary.
//
// Contract:
//   - CreateAccount: register a new identity; fails with ErrDuplicateAccount,
//     ErrInvalidInput, or ErrNetwork.
//   - CreateSession: authenticate; no-op success when a session is already
//     active; fails with ErrInvalidCredentials or ErrNetwork.
//   - DeleteCurrentSession: best-effort session termination.
//   - GetCurrentAccount: the signed-in identity, or ErrNotFound when none.
//   - ListDocuments / CreateDocument: document store access.
//   - AvatarURL: asset URL for an initials avatar (no I/O).
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Close() error
	CreateAccount(ctx context.Context, email, password, name string) (string, error)
	CreateSession(ctx context.Context, email, password string) error
	DeleteCurrentSession(ctx context.Context) error
	GetCurrentAccount(ctx context.Context) (*models.Account, error)
	ListDocuments(ctx context.Context, collection string, filters []Filter) ([]models.Document, error)
	CreateDocument(ctx context.Context, collection string, fields map[string]any) (models.Document, error)
	AvatarURL(name string) string
}
