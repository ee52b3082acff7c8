package web

import (
	"fmt"
	"html"
	"regexp"
)

// The page's catalogue configuration travels as two <meta> tags injected into
// the markup on every request. Injection strips any previously injected copies
// first, so configuration changes take effect on restart without a rebuild.

var (
	injectedMetaPattern = regexp.MustCompile(`(?i)[ \t]*<meta name="public-api-(?:key|base)"[^>]*>\n?`)
	headPattern         = regexp.MustCompile(`(?i)<head[^>]*>`)
	metaKeyPattern      = regexp.MustCompile(`<meta name="public-api-key" content="([^"]*)"`)
	metaBasePattern     = regexp.MustCompile(`<meta name="public-api-base" content="([^"]*)"`)
)

// InjectMeta rewrites page markup to carry fresh public-api-key and
// public-api-base meta tags directly after the opening <head> tag, replacing
// any previously injected copies.
func InjectMeta(markup []byte, apiKey, apiBase string) []byte {
	stripped := injectedMetaPattern.ReplaceAll(markup, nil)
	injected := false
	return headPattern.ReplaceAllFunc(stripped, func(head []byte) []byte {
		if injected {
			return head
		}
		injected = true
		tags := fmt.Sprintf("%s\n    <meta name=\"public-api-key\" content=\"%s\">\n    <meta name=\"public-api-base\" content=\"%s\">",
			head, html.EscapeString(apiKey), html.EscapeString(apiBase))
		return []byte(tags)
	})
}

// ExtractMeta reads the injected configuration pair back out of rendered
// markup. A missing tag yields "" for that value.
func ExtractMeta(markup []byte) (apiKey, apiBase string) {
	if m := metaKeyPattern.FindSubmatch(markup); m != nil {
		apiKey = html.UnescapeString(string(m[1]))
	}
	if m := metaBasePattern.FindSubmatch(markup); m != nil {
		apiBase = html.UnescapeString(string(m[1]))
	}
	return apiKey, apiBase
}
