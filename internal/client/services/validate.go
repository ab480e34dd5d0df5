package services

import (
	"regexp"
	"sort"
	"strings"
)

// Client-side validation mirrors what the server enforces, so obviously bad
// input never reaches the network. The server remains authoritative.
var (
	emailRe     = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	nonDigitRe  = regexp.MustCompile(`\D`)
	upperRe     = regexp.MustCompile(`[A-Z]`)
	lowerRe     = regexp.MustCompile(`[a-z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
	phoneLength = 10
)

// FieldErrors maps a field name to its validation message. It is returned
// instead of a network call when local validation fails.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(e[f])
	}
	return b.String()
}

// validEmail checks the simple text@text.text shape.
func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

// validPhone reports whether s reduces to exactly ten digits after
// stripping every non-digit character.
func validPhone(s string) bool {
	return len(nonDigitRe.ReplaceAllString(s, "")) == phoneLength
}

// validatePassword enforces the signup complexity rule: at least 8
// characters with an uppercase letter, a lowercase letter and a digit.
// Returns an explanatory message, or "" when the password is acceptable.
func validatePassword(pw []byte) string {
	s := string(pw)
	switch {
	case len(s) < 8:
		return "password must be at least 8 characters"
	case !upperRe.MatchString(s):
		return "password must contain an uppercase letter"
	case !lowerRe.MatchString(s):
		return "password must contain a lowercase letter"
	case !digitRe.MatchString(s):
		return "password must contain a digit"
	}
	return ""
}
