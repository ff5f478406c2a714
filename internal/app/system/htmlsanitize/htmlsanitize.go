// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from user-supplied text before
// it is persisted. Meeting minutes, postponement reasons, and agendas are
// free text typed by mentors and rendered back in the web client.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Sanitize keeps basic formatting markup but removes scripts, event handlers,
// and javascript: URLs.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// Plain strips all markup, leaving text only. Used for fields that are never
// rendered as HTML.
func Plain(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
