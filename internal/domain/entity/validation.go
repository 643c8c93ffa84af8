package entity

import "strings"

// RequiredString validates that a string is non-empty after trimming whitespace.
// It returns the trimmed value, or a ValidationError naming the offending field.
// All validated text fields (author names, magazine names and categories,
// article titles) share this rule, so entities store clean, trimmed values.
func RequiredString(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Field: field, Message: "cannot be empty"}
	}
	return trimmed, nil
}
