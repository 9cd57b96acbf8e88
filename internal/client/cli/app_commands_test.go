package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/foodcourt/internal/client/auth"
	"github.com/dmitrijs2005/foodcourt/internal/client/cart"
	"github.com/dmitrijs2005/foodcourt/internal/client/client"
	"github.com/dmitrijs2005/foodcourt/internal/client/config"
	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/client/security"
	"github.com/dmitrijs2005/foodcourt/internal/client/services"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// fakeClient implements client.Client for app command tests.
type fakeClient struct {
	CreateAccountErr error
	CreateSessionErr error
	AccountRet       *models.Account
	AccountErr       error
	Docs             map[string][]models.Document
	ListErr          error

	calls []string
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) CreateAccount(ctx context.Context, email, password, name string) (string, error) {
	f.calls = append(f.calls, "CreateAccount")
	return "acct-1", f.CreateAccountErr
}

func (f *fakeClient) CreateSession(ctx context.Context, email, password string) error {
	f.calls = append(f.calls, "CreateSession")
	return f.CreateSessionErr
}

func (f *fakeClient) DeleteCurrentSession(ctx context.Context) error {
	f.calls = append(f.calls, "DeleteCurrentSession")
	return nil
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
	docs := f.Docs[collection]
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
	return models.Document{ID: "doc-1", Fields: fields}, nil
}

func (f *fakeClient) AvatarURL(name string) string { return "https://avatars/" + name }

// newTestApp assembles an App around fc without touching the network.
func newTestApp(t *testing.T, fc *fakeClient, debug bool) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Debug = debug

	logger := logging.NewDefault(&bytes.Buffer{}, true)
	limiter := security.NewRateLimiter(security.DefaultMaxAttempts, 15*time.Minute)
	sanitizer := security.NewSanitizer(logger, nil, false)
	session := auth.NewStore(fc, cfg.UsersCollection, logger)
	collections := services.Collections{
		Users:      cfg.UsersCollection,
		Categories: cfg.CategoriesCollection,
		Menu:       cfg.MenuCollection,
	}

	return &App{
		config:      cfg,
		logger:      logger,
		apiClient:   fc,
		session:     session,
		cart:        cart.NewStore(),
		authService: services.NewAuthService(fc, limiter, sanitizer, session, cfg.UsersCollection, logger),
		menuService: services.NewMenuService(fc, sanitizer, collections, logger),
		seedService: services.NewSeedService(fc, collections, logger),
		reader:      bufio.NewReader(strings.NewReader("")),
	}
}

// stubInputs replaces the interactive helpers with canned answers.
func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// capturePrintln redirects printlnFn into a slice of rendered lines.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func signedInFixture() *fakeClient {
	return &fakeClient{
		AccountRet: &models.Account{ID: "acct-1", Email: "alice@example.org", Name: "Alice"},
		Docs: map[string][]models.Document{
			"users": {{ID: "u1", Fields: map[string]any{"accountID": "acct-1", "email": "alice@example.org", "name": "Alice"}}},
		},
	}
}

func TestLogin_Success(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "Sup3rsecret!")

	fc := signedInFixture()
	a := newTestApp(t, fc, false)

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
}

func TestLogin_ValidationFailureNeverCallsRemote(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"not-an-email"}, "Sup3rsecret!")

	fc := signedInFixture()
	a := newTestApp(t, fc, false)

	require.Error(t, a.Login(context.Background()))
	require.Empty(t, fc.calls)
	require.NotEmpty(t, *lines)
}

func TestRegister_Success(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"Alice", "alice@example.org"}, "Sup3rsecret!")

	fc := signedInFixture()
	a := newTestApp(t, fc, false)

	require.NoError(t, a.Register(context.Background()))
	require.Contains(t, fc.calls, "CreateAccount")
	require.Contains(t, fc.calls, "CreateDocument:users")
	require.True(t, a.isLoggedIn())
}

func TestLogout_ClearsSession(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "Sup3rsecret!")

	fc := signedInFixture()
	a := newTestApp(t, fc, false)
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Contains(t, fc.calls, "DeleteCurrentSession")
}

func TestAddItem_WithCustomizations(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"m1", "1"}, "")

	fc := signedInFixture()
	fc.Docs["menu"] = []models.Document{
		{ID: "m1", Fields: map[string]any{
			"name":  "Classic Burger",
			"price": 9.99,
			"customizations": []any{
				map[string]any{"id": "c1", "name": "Extra cheese", "price": 1.00},
				map[string]any{"id": "c2", "name": "Bacon", "price": 1.50},
			},
		}},
	}
	a := newTestApp(t, fc, false)

	require.NoError(t, a.AddItem(context.Background()))

	items := a.cart.Items()
	require.Len(t, items, 1)
	require.Equal(t, "Classic Burger", items[0].Name)
	// 9.99 base + 1.00 extra cheese
	require.Equal(t, "$10.99", items[0].Price.String())
	require.Len(t, items[0].Customizations, 1)
}

func TestAddItem_UnknownID(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"missing"}, "")

	fc := signedInFixture()
	a := newTestApp(t, fc, false)

	require.Error(t, a.AddItem(context.Background()))
	require.Empty(t, a.cart.Items())
	require.Contains(t, strings.Join(*lines, "\n"), security.MsgNotFound)
}

func TestOrder_RequiresLogin(t *testing.T) {
	lines := capturePrintln(t)

	a := newTestApp(t, signedInFixture(), false)
	a.cart.AddItem(cart.Item{ID: "m1", Name: "Burger", Price: 999})

	require.NoError(t, a.Order(context.Background()))
	require.Equal(t, 1, a.cart.TotalItems(), "cart must survive a blocked order")
	require.Contains(t, strings.Join(*lines, "\n"), "sign in")
}

func TestOrder_ConfirmClearsCart(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "Sup3rsecret!")

	a := newTestApp(t, signedInFixture(), false)
	require.NoError(t, a.Login(context.Background()))

	a.cart.AddItem(cart.Item{ID: "m1", Name: "Burger", Price: 999})
	a.cart.AddItem(cart.Item{ID: "m1", Name: "Burger", Price: 999})

	stubInputs(t, []string{"y"}, "")
	require.NoError(t, a.Order(context.Background()))
	require.Equal(t, 0, a.cart.TotalItems())

	// 19.98 + 5.00 delivery - 0.50 discount
	require.Contains(t, strings.Join(*lines, "\n"), "$24.48")
}

func TestOrder_DeclinedKeepsCart(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "Sup3rsecret!")

	a := newTestApp(t, signedInFixture(), false)
	require.NoError(t, a.Login(context.Background()))

	a.cart.AddItem(cart.Item{ID: "m1", Name: "Burger", Price: 999})

	stubInputs(t, []string{"n"}, "")
	require.NoError(t, a.Order(context.Background()))
	require.Equal(t, 1, a.cart.TotalItems())
}

func TestSeed_ReportsCounts(t *testing.T) {
	lines := capturePrintln(t)

	fc := &fakeClient{Docs: map[string][]models.Document{}}
	a := newTestApp(t, fc, true)

	require.NoError(t, a.Seed(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "Seeded")
}
