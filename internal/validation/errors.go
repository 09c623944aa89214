package validation

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to its validation message. Every
// violated field is reported in one pass so the form can show all problems
// at once instead of failing on the first.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for a field, keeping the first message when the
// same field is flagged twice.
func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}
