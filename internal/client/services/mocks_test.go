package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/foodcourt/internal/client/auth"
	"github.com/dmitrijs2005/foodcourt/internal/client/client"
	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/client/security"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	CreateAccountRet string
	CreateAccountErr error
	CreateSessionErr error
	DeleteSessionErr error

	// SessionStarted receives one value when CreateSession is entered;
	// SessionBlock, when set, holds CreateSession until it is closed.
	SessionStarted chan struct{}
	SessionBlock   chan struct{}

	AccountRet *models.Account
	AccountErr error

	// DocsByCollection routes ListDocuments by collection name.
	DocsByCollection map[string][]models.Document
	ListErr          error

	CreateDocRet models.Document
	CreateDocErr error

	// argument capture
	LastCreateAccountEmail string
	LastCreateAccountName  string
	LastSessionEmail       string
	CreatedDocs            []createdDoc

	calls []string
}

type createdDoc struct {
	Collection string
	Fields     map[string]any
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) CreateAccount(ctx context.Context, email, password, name string) (string, error) {
	f.calls = append(f.calls, "CreateAccount")
	f.LastCreateAccountEmail = email
	f.LastCreateAccountName = name
	return f.CreateAccountRet, f.CreateAccountErr
}

func (f *fakeClient) CreateSession(ctx context.Context, email, password string) error {
	f.calls = append(f.calls, "CreateSession")
	f.LastSessionEmail = email
	if f.SessionStarted != nil {
		f.SessionStarted <- struct{}{}
	}
	if f.SessionBlock != nil {
		<-f.SessionBlock
	}
	return f.CreateSessionErr
}

func (f *fakeClient) DeleteCurrentSession(ctx context.Context) error {
	f.calls = append(f.calls, "DeleteCurrentSession")
	return f.DeleteSessionErr
}

func (f *fakeClient) GetCurrentAccount(ctx context.Context) (*models.Account, error) {
	f.calls = append(f.calls, "GetCurrentAccount")
	return f.AccountRet, f.AccountErr
}

func (f *fakeClient) ListDocuments(ctx context.Context, collection string, filters []client.Filter) ([]models.Document, error) {
	f.calls = append(f.calls, "ListDocuments:"+collection)
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	docs := f.DocsByCollection[collection]
	if len(filters) == 0 {
		return docs, nil
	}
	matched := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		ok := true
		for _, flt := range filters {
			v := d.String(flt.Field)
			if flt.Field == "$id" {
				v = d.ID
			}
			if v != flt.Value {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (f *fakeClient) CreateDocument(ctx context.Context, collection string, fields map[string]any) (models.Document, error) {
	f.calls = append(f.calls, "CreateDocument:"+collection)
	if f.CreateDocErr != nil {
		return models.Document{}, f.CreateDocErr
	}
	f.CreatedDocs = append(f.CreatedDocs, createdDoc{Collection: collection, Fields: fields})
	if f.CreateDocRet.ID != "" {
		return f.CreateDocRet, nil
	}
	return models.Document{ID: "doc-generated", Fields: fields}, nil
}

func (f *fakeClient) AvatarURL(name string) string {
	return "https://assets.example.com/initials?name=" + name
}

func testCollections() Collections {
	return Collections{Users: "users", Categories: "categories", Menu: "menu"}
}

// testDeps builds the common wiring for service tests.
func testDeps(t *testing.T, fc *fakeClient) (*security.RateLimiter, *security.Sanitizer, *auth.Store, logging.Logger) {
	t.Helper()
	logger := logging.NewDefault(&bytes.Buffer{}, true)
	limiter := security.NewRateLimiter(security.DefaultMaxAttempts, 15*time.Minute)
	sanitizer := security.NewSanitizer(logger, nil, false)
	session := auth.NewStore(fc, "users", logger)
	return limiter, sanitizer, session, logger
}
