package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer removes dangerous HTML elements and attributes before the
// content is converted to Markdown. Uploaded pages and fetched pages are
// untrusted input; scripts, event handlers and javascript: URLs must never
// survive into the output.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates a sanitizer with safe HTML policies.
// Uses a UGC (User Generated Content) policy that keeps common formatting -
// headings, lists, links, tables, code blocks - while stripping everything
// executable.
func NewHTMLSanitizer() *HTMLSanitizer {
	// Start with UGC policy (balanced security/functionality)
	policy := bluemonday.UGCPolicy()

	// Inline images are fine; their data is inert after conversion
	policy.AllowDataURIImages()

	return &HTMLSanitizer{policy: policy}
}

// Sanitize removes dangerous HTML while preserving safe content.
func (s *HTMLSanitizer) Sanitize(html string) (string, error) {
	return s.policy.Sanitize(html), nil
}
