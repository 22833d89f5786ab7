package search

import (
	"strings"
)

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens and each token
// must match at least one field (AND logic).
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if all tokens match at least one field.
func (p *TokenProvider) Match(r Record, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	values := fieldValues(r, p.opts.Fields, p.opts.CaseInsensitive)
	for _, token := range tokens {
		if p.opts.CaseInsensitive {
			token = strings.ToLower(token)
		}
		matched := false
		for _, value := range values {
			if strings.Contains(value, token) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return ModeToken
}
