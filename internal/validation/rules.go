package validation

import (
	"regexp"
	"time"
)

var (
	// emailPattern requires a local part, an @ and a dotted domain with a
	// TLD, so bare hostnames like "user@domain" are rejected.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// textPattern allows letters, numbers, spaces, and basic punctuation (. , - ').
	textPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.',\-]+$`)
)

// ValidateEmail reports whether s looks like a deliverable email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateTextField reports whether s contains only allowed characters.
// The pattern requires at least one character, so the empty string is invalid.
func ValidateTextField(s string) bool {
	return textPattern.MatchString(s)
}

// ValidateDateRange reports whether end is on or after start. Both are
// expected as YYYY-MM-DD; unparseable input is treated as invalid.
func ValidateDateRange(start, end string) bool {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return false
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return false
	}
	return !e.Before(s)
}
