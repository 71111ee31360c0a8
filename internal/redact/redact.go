// Package redact strips known secret shapes out of strings before they
// reach a log line, adapted from services/llm/redaction.go — generalized
// here from LLM provider API keys to the embedding provider's OpenAI key
// and the store's Mongo connection URI, the two secret-shaped values this
// repository ever logs around.
package redact

import "regexp"

type pattern struct {
	re          *regexp.Regexp
	replacement string
}

// patterns is ordered most-specific-first: sk-ant-... must be checked
// before the shorter sk-... OpenAI pattern or it would only get a partial
// match.
var patterns = []pattern{
	{regexp.MustCompile(`sk-ant-api03-[A-Za-z0-9_-]{20,}`), "[REDACTED:anthropic_key]"},
	{regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`), "[REDACTED:openai_key]"},
	{regexp.MustCompile(`Bearer\s+[A-Za-z0-9._-]{10,}`), "[REDACTED:bearer_token]"},
	{regexp.MustCompile(`key=[A-Za-z0-9._-]{10,}`), "key=[REDACTED]"},
	{regexp.MustCompile(`password=[^\s&]{3,}`), "password=[REDACTED]"},
	{regexp.MustCompile(`(mongodb(\+srv)?|postgres|mysql)://[^\s]+@`), "${1}://[REDACTED]@"},
}

// String redacts every known secret pattern out of s. Not cryptographic
// redaction — pattern-based only, and a secret in an unrecognized shape
// passes through untouched.
func String(s string) string {
	if s == "" {
		return s
	}
	for _, p := range patterns {
		s = p.re.ReplaceAllString(s, p.replacement)
	}
	return s
}
