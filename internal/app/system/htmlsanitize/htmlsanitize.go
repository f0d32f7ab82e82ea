// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe HTML from user-supplied text before it
// is stored. Record descriptions are rendered verbatim by dashboard UIs, so
// everything that reaches the store must already be safe to embed.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func ugcPolicy() *bluemonday.Policy {
	once.Do(func() {
		// UGC policy: formatting, lists, links (nofollow), images, tables.
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Safe formatting markup passes through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(ugcPolicy().Sanitize(s))
}
