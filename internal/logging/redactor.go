package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var keySeparator = regexp.MustCompile(`[^a-z0-9]+`)

// sensitiveWords covers credentials plus the employee fields that identify or
// pay a person. Matching is per key segment, so "salary_floor" is redacted
// while "secretary" is not.
var sensitiveWords = []string{
	"secret", "password", "token", "key", "auth", "credential",
	"email", "phone", "salary",
}

// redactor redacts sensitive values in log key-value pairs.
type redactor struct {
	sensitiveWords map[string]bool
}

func newRedactor() *redactor {
	m := make(map[string]bool, len(sensitiveWords))
	for _, w := range sensitiveWords {
		m[w] = true
	}
	return &redactor{sensitiveWords: m}
}

// redact returns a copy of the flattened pairs with sensitive values replaced.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		if r.isSensitive(key) {
			result[i+1] = redacted
		}
	}
	return result
}

// isSensitive splits camelCase and separators, then looks for a sensitive segment.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range keySeparator.Split(strings.ToLower(splitCamel(key)), -1) {
		if r.sensitiveWords[part] {
			return true
		}
	}
	return false
}

// splitCamel inserts an underscore before each upper-case letter that follows a lower-case one.
func splitCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, c := range s {
		if i > 0 && c >= 'A' && c <= 'Z' {
			prev := s[i-1]
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte('_')
			}
		}
		b.WriteRune(c)
	}
	return b.String()
}
