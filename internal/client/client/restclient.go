package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/common"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

const (
	defaultTimeout = 12 * time.Second

	// Outbound throttle: the storefront is a cooperative UI client and has
	// no business hammering the service.
	requestsPerSecond = 10
	requestBurst      = 10

	readRetries      = 2
	readRetryBackoff = 250 * time.Millisecond
)

// Options configures the REST client.
type Options struct {
	Endpoint   string // e.g. https://api.example.com
	ProjectID  string
	APIKey     string // optional; required only for seeding
	DatabaseID string
	Timeout    time.Duration
	Logger     logging.Logger
}

// RESTClient talks JSON over HTTP to the remote account/document service.
// It holds the session token for the life of the process and injects it on
// every request.
type RESTClient struct {
	opts       Options
	prefix     string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu           sync.Mutex
	sessionToken string
}

// NewRESTClient validates options and builds a client.
func NewRESTClient(opts Options) (*RESTClient, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if opts.ProjectID == "" {
		return nil, fmt.Errorf("project id is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &RESTClient{
		opts:       opts,
		prefix:     strings.TrimRight(opts.Endpoint, "/") + "/v1",
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}, nil
}

func (c *RESTClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// apiError is the remote service's failure body.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// mapStatus converts an HTTP failure into a sentinel, keeping the raw remote
// message attached for the debug diagnostic channel.
func mapStatus(status int, e apiError) error {
	lower := strings.ToLower(e.Message)
	var sentinel error
	switch {
	case status == http.StatusConflict:
		sentinel = ErrDuplicateAccount
	case status == http.StatusNotFound:
		sentinel = ErrNotFound
	case status == http.StatusUnauthorized && strings.Contains(lower, "credentials"):
		sentinel = ErrInvalidCredentials
	case status == http.StatusUnauthorized && strings.Contains(lower, "expired"):
		sentinel = ErrSessionExpired
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case status == http.StatusBadRequest:
		sentinel = ErrInvalidInput
	default:
		sentinel = ErrNetwork
	}
	if e.Message == "" {
		return fmt.Errorf("%w (status %d)", sentinel, status)
	}
	return fmt.Errorf("%w: %s", sentinel, e.Message)
}

// sessionExpired reports whether the held token is a JWT whose exp claim is
// in the past. Non-JWT or claimless tokens are treated as live; the server
// remains the authority.
func sessionExpired(token string) bool {
	if token == "" {
		return false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (c *RESTClient) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionToken
}

func (c *RESTClient) setToken(t string) {
	c.mu.Lock()
	c.sessionToken = t
	c.mu.Unlock()
}

// do performs one JSON request. authed requests are pre-empted locally when
// the held session token has already expired.
func (c *RESTClient) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	token := c.token()
	if authed && sessionExpired(token) {
		return ErrSessionExpired
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.prefix+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.ProjectHeaderName, c.opts.ProjectID)
	if c.opts.APIKey != "" {
		req.Header.Set(common.APIKeyHeaderName, c.opts.APIKey)
	}
	if token != "" {
		req.Header.Set(common.SessionHeaderName, token)
	}

	if c.opts.Logger != nil {
		c.opts.Logger.Debug(ctx, "remote call", "method", method, "path", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		var e apiError
		_ = json.Unmarshal(data, &e)
		return mapStatus(resp.StatusCode, e)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// doGet is do for idempotent reads, with bounded backoff retries on
// transport-level failures only.
func (c *RESTClient) doGet(ctx context.Context, path string, out any, authed bool) error {
	backoff := retry.WithMaxRetries(readRetries, retry.NewFibonacci(readRetryBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, out, authed)
		if errors.Is(err, ErrNetwork) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// CreateAccount registers a new identity and returns its account id.
func (c *RESTClient) CreateAccount(ctx context.Context, email, password, name string) (string, error) {
	body := map[string]any{
		"userId":   uuid.NewString(),
		"email":    email,
		"password": password,
		"name":     name,
	}
	var resp struct {
		ID string `json:"$id"`
	}
	if err := c.do(ctx, http.MethodPost, "/account", body, &resp, false); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// CreateSession authenticates with email and password. When a live session
// is already held it verifies it against the service and succeeds without
// creating another one.
func (c *RESTClient) CreateSession(ctx context.Context, email, password string) error {
	if t := c.token(); t != "" && !sessionExpired(t) {
		if _, err := c.GetCurrentAccount(ctx); err == nil {
			return nil
		}
	}

	body := map[string]any{"email": email, "password": password}
	var resp struct {
		Secret string `json:"secret"`
	}
	if err := c.do(ctx, http.MethodPost, "/account/sessions/email", body, &resp, false); err != nil {
		return err
	}
	c.setToken(resp.Secret)
	return nil
}

// DeleteCurrentSession terminates the session on the service. The local
// token is dropped regardless of the outcome.
func (c *RESTClient) DeleteCurrentSession(ctx context.Context) error {
	err := c.do(ctx, http.MethodDelete, "/account/sessions/current", nil, nil, true)
	c.setToken("")
	return err
}

// GetCurrentAccount returns the signed-in identity, or ErrNotFound wrapped
// when the service reports no session.
func (c *RESTClient) GetCurrentAccount(ctx context.Context) (*models.Account, error) {
	var acct models.Account
	if err := c.doGet(ctx, "/account", &acct, true); err != nil {
		return nil, err
	}
	return &acct, nil
}

// ListDocuments fetches the documents of a collection matching all filters,
// in the service's stored order.
func (c *RESTClient) ListDocuments(ctx context.Context, collection string, filters []Filter) ([]models.Document, error) {
	q := url.Values{}
	for _, f := range filters {
		q.Add("equal", f.Field+"="+f.Value)
	}
	path := fmt.Sprintf("/databases/%s/collections/%s/documents",
		url.PathEscape(c.opts.DatabaseID), url.PathEscape(collection))
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp struct {
		Total     int               `json:"total"`
		Documents []models.Document `json:"documents"`
	}
	if err := c.doGet(ctx, path, &resp, true); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// CreateDocument inserts a document with a generated unique id.
func (c *RESTClient) CreateDocument(ctx context.Context, collection string, fields map[string]any) (models.Document, error) {
	body := map[string]any{
		"documentId": uuid.NewString(),
		"data":       fields,
	}
	path := fmt.Sprintf("/databases/%s/collections/%s/documents",
		url.PathEscape(c.opts.DatabaseID), url.PathEscape(collection))

	var doc models.Document
	if err := c.do(ctx, http.MethodPost, path, body, &doc, true); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

// AvatarURL builds the initials-avatar asset URL for a display name.
func (c *RESTClient) AvatarURL(name string) string {
	return c.prefix + "/avatars/initials?name=" + url.QueryEscape(name)
}
