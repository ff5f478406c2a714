// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied strings before
// they are compared or persisted.
package normalize

import "strings"

// Email trims and lowercases an email address. Lookup keys are exact matches
// on this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a raw query-string value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
