// Package validation classifies raw user text before it reaches the remote
// service. Identity fields (email, password, name) are strict and block
// submission; search text is corrective: it is never rejected, only cleaned.
//
// All functions are pure: no I/O, no panics.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	passwordMinLength = 8
	nameMinLength     = 2
	nameMaxLength     = 50
	searchMaxLength   = 100

	// specialChars is the fixed set a password must draw from.
	specialChars = "@$!%*?&"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	// searchStrip removes HTML/script and SQL injection characters.
	searchStrip = regexp.MustCompile(`[<>'";]`)
)

// Result is the verdict for a strict field.
type Result struct {
	IsValid bool
	Message string
}

// SearchResult is the verdict for search text. Callers must act on
// Sanitized regardless of IsValid; IsValid=false only signals that
// characters were removed.
type SearchResult struct {
	IsValid   bool
	Sanitized string
	Message   string
}

func invalid(msg string) Result {
	return Result{IsValid: false, Message: msg}
}

// ValidateEmail accepts addresses of the local@domain.tld shape: no
// whitespace, a single "@", and at least one "." after it.
func ValidateEmail(email string) Result {
	if email == "" {
		return invalid("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("Please enter a valid email address")
	}
	return Result{IsValid: true}
}

// ValidatePassword requires at least 8 characters with at least one each of
// lowercase, uppercase, digit, and a character from the special set.
//
// RE2 has no lookaheads, so the character classes are checked explicitly.
func ValidatePassword(password string) Result {
	if password == "" {
		return invalid("Password is required")
	}
	if len(password) < passwordMinLength {
		return invalid(fmt.Sprintf("Password must be at least %d characters", passwordMinLength))
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return invalid("Password must be at least 8 characters with uppercase, lowercase, number, and special character")
	}
	return Result{IsValid: true}
}

// ValidateName accepts 2-50 characters of letters, spaces, hyphens, and
// apostrophes.
func ValidateName(name string) Result {
	if name == "" {
		return invalid("Name is required")
	}
	if len(name) < nameMinLength || len(name) > nameMaxLength {
		return invalid(fmt.Sprintf("Name must be %d-%d characters", nameMinLength, nameMaxLength))
	}
	if !namePattern.MatchString(name) {
		return invalid("Name must be 2-50 characters and contain only letters, spaces, hyphens, and apostrophes")
	}
	return Result{IsValid: true}
}

// SanitizeSearch strips injection characters, trims whitespace, and caps the
// length at 100.
func SanitizeSearch(query string) string {
	if query == "" {
		return ""
	}
	s := strings.TrimSpace(searchStrip.ReplaceAllString(query, ""))
	if len(s) > searchMaxLength {
		s = s[:searchMaxLength]
	}
	return s
}

// ValidateSearch sanitizes search text. The input is never rejected: empty
// input is fine, and dangerous characters are removed rather than refused.
// IsValid is false only when stripping changed the content, so the caller
// can tell the user characters were removed.
func ValidateSearch(input string) SearchResult {
	if input == "" {
		return SearchResult{IsValid: true, Sanitized: ""}
	}

	sanitized := SanitizeSearch(input)

	if sanitized != strings.TrimSpace(input) {
		return SearchResult{
			IsValid:   false,
			Sanitized: sanitized,
			Message:   "Search contains invalid characters",
		}
	}
	return SearchResult{IsValid: true, Sanitized: sanitized}
}
