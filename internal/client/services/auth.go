package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/foodcourt/internal/client/auth"
	"github.com/dmitrijs2005/foodcourt/internal/client/client"
	"github.com/dmitrijs2005/foodcourt/internal/client/security"
	"github.com/dmitrijs2005/foodcourt/internal/client/validation"
	"github.com/dmitrijs2005/foodcourt/internal/common"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// AuthService runs the guarded authentication flows.
//
// Contract:
//   - SignIn: validate -> rate-limit -> create session -> refresh session state.
//   - SignUp: validate -> rate-limit -> create account + profile -> session.
//   - Logout: delegate to the session store (always clears local state).
//
// Guard failures (ValidationError, RateLimitError) are resolved entirely
// client-side and never reach the remote service. Remote failures come back
// as RemoteError with a sanitized message. Submitting while another sign-in
// or sign-up is still running returns common.ErrBusy.
type AuthService struct {
	client          client.Client
	limiter         *security.RateLimiter
	sanitizer       *security.Sanitizer
	session         *auth.Store
	usersCollection string
	logger          logging.Logger

	mu       sync.Mutex
	inflight bool
}

// NewAuthService wires the guard layer around the remote client. The limiter
// is shared between sign-in and sign-up so attempts on either entry point
// count against the same per-email budget.
func NewAuthService(c client.Client, limiter *security.RateLimiter, sanitizer *security.Sanitizer,
	session *auth.Store, usersCollection string, logger logging.Logger) *AuthService {
	return &AuthService{
		client:          c,
		limiter:         limiter,
		sanitizer:       sanitizer,
		session:         session,
		usersCollection: usersCollection,
		logger:          logger,
	}
}

// acquire takes the in-flight slot shared by SignIn and SignUp. A second
// submission while one is running returns common.ErrBusy before the limiter
// or the remote service see it.
func (s *AuthService) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight {
		return false
	}
	s.inflight = true
	return true
}

func (s *AuthService) release() {
	s.mu.Lock()
	s.inflight = false
	s.mu.Unlock()
}

func (s *AuthService) checkLimit(email string) error {
	key := security.NormalizeKey(email)
	if s.limiter.Allow(key) {
		return nil
	}
	return &RateLimitError{RetryAfter: s.limiter.RemainingTime(key)}
}

// SignIn authenticates an existing user.
func (s *AuthService) SignIn(ctx context.Context, email, password string) error {
	if v := validation.ValidateEmail(email); !v.IsValid {
		return &ValidationError{Field: "email", Message: v.Message}
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}

	if !s.acquire() {
		return common.ErrBusy
	}
	defer s.release()

	if err := s.checkLimit(email); err != nil {
		return err
	}

	if err := s.client.CreateSession(ctx, email, password); err != nil {
		return &RemoteError{Message: s.sanitizer.Sanitize(ctx, err, email), Err: err}
	}

	s.logger.Info(ctx, "signed in", "email", security.MaskEmail(email))
	return s.session.Fetch(ctx)
}

// SignUp registers a new user: account, then the profile document with an
// initials avatar, then a session.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) error {
	if v := validation.ValidateName(name); !v.IsValid {
		return &ValidationError{Field: "name", Message: v.Message}
	}
	if v := validation.ValidateEmail(email); !v.IsValid {
		return &ValidationError{Field: "email", Message: v.Message}
	}
	if v := validation.ValidatePassword(password); !v.IsValid {
		return &ValidationError{Field: "password", Message: v.Message}
	}

	if !s.acquire() {
		return common.ErrBusy
	}
	defer s.release()

	if err := s.checkLimit(email); err != nil {
		return err
	}

	accountID, err := s.client.CreateAccount(ctx, email, password, name)
	if err != nil {
		return &RemoteError{Message: s.sanitizer.Sanitize(ctx, err, email), Err: err}
	}

	_, err = s.client.CreateDocument(ctx, s.usersCollection, map[string]any{
		"email":     email,
		"name":      name,
		"accountID": accountID,
		"avatar":    s.client.AvatarURL(name),
	})
	if err != nil {
		return &RemoteError{Message: s.sanitizer.Sanitize(ctx, err, email), Err: err}
	}

	if err := s.client.CreateSession(ctx, email, password); err != nil {
		return &RemoteError{Message: s.sanitizer.Sanitize(ctx, err, email), Err: err}
	}

	s.logger.Info(ctx, "signed up", "email", security.MaskEmail(email))
	return s.session.Fetch(ctx)
}

// Logout terminates the session. Local state clears even when the remote
// call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}
