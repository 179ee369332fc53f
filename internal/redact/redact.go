// Package redact scrubs sensitive information from strings before they are
// logged. Upstream model errors can echo the API key or request URL, and
// store errors carry absolute filesystem paths; neither belongs in logs.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

var (
	// API keys and tokens, including key=... query parameters on model
	// request URLs.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Absolute filesystem paths from the output directory tree.
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// Hostnames with optional ports from upstream request errors.
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{apiKeyRegex, "${1}${2}" + RedactedKeyPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
		{winPathRegex, RedactedPathPlaceholder},
		{hostPortRegex, RedactedHostPlaceholder},
	}
)

// String scrubs all recognized sensitive patterns from s.
func String(s string) string {
	for _, p := range patternPlaceholders {
		s = p.pattern.ReplaceAllString(s, p.placeholder)
	}
	return s
}

// Error scrubs an error's message, returning "" for nil errors.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
