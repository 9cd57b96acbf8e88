package security

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// User-safe messages. The UI shows these and only these for remote failures.
const (
	MsgAuthenticationFailed = "Invalid email or password. Please try again."
	MsgDuplicateAccount     = "An account with this email already exists."
	MsgInvalidEmail         = "Please enter a valid email address."
	MsgPasswordPolicy       = "Password does not meet requirements."
	MsgNetworkError         = "Network error. Please check your connection and try again."
	MsgNotFound             = "The requested item could not be found."
	MsgUnauthorized         = "You are not authorized to perform this action."
	MsgSessionExpired       = "Your session has expired. Please sign in again."
	MsgGeneralError         = "Something went wrong. Please try again later."
)

// mapping is matched case-insensitively against the raw error text, in
// order; first match wins.
var mapping = []struct {
	pattern string
	message string
}{
	{"invalid credentials", MsgAuthenticationFailed},
	{"user already exists", MsgDuplicateAccount},
	{"invalid email", MsgInvalidEmail},
	{"password must be", MsgPasswordPolicy},
	{"network request failed", MsgNetworkError},
	{"document not found", MsgNotFound},
	{"unauthorized", MsgUnauthorized},
	{"session expired", MsgSessionExpired},
}

// MapError translates any failure into one of the fixed user-safe messages.
// The raw error text never reaches the end user.
func MapError(err error) string {
	if err == nil {
		return MsgGeneralError
	}
	raw := strings.ToLower(err.Error())
	for _, m := range mapping {
		if strings.Contains(raw, m.pattern) {
			return m.message
		}
	}
	return MsgGeneralError
}

// MaskEmail keeps the first two characters of the local part and replaces
// the remainder up to the "@" with a fixed mask.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 2 {
		return email
	}
	return email[:2] + "***" + email[at:]
}

// Reporter is the error-monitoring collaborator. Raw failure details are
// forwarded to it only in debug runtimes, with PII already masked.
type Reporter interface {
	Report(ctx context.Context, detail string)
}

// Sanitizer wraps MapError with the debug-only diagnostic channel: in debug
// mode the raw detail goes to the logger and the Reporter; in production the
// mapped message is the only output anywhere.
type Sanitizer struct {
	logger   logging.Logger
	reporter Reporter
	debug    bool
}

// NewSanitizer builds a Sanitizer. reporter may be nil.
func NewSanitizer(logger logging.Logger, reporter Reporter, debug bool) *Sanitizer {
	return &Sanitizer{logger: logger, reporter: reporter, debug: debug}
}

// Sanitize maps err to its user-safe message. pii lists values (e.g. the
// email involved) that must be masked before the raw detail is written to
// the diagnostic channel.
func (s *Sanitizer) Sanitize(ctx context.Context, err error, pii ...string) string {
	msg := MapError(err)
	if !s.debug || err == nil {
		return msg
	}

	detail := err.Error()
	for _, p := range pii {
		if p != "" {
			detail = strings.ReplaceAll(detail, p, MaskEmail(p))
		}
	}

	s.logger.Debug(ctx, "unmapped or remote error", "detail", detail, "shown", msg)
	if s.reporter != nil {
		s.reporter.Report(ctx, detail)
	}
	return msg
}
