package search

import (
	"regexp"
	"sync"
)

// compiledPattern is the outcome of compiling one pattern, error included.
type compiledPattern struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// RegexProvider matches if any configured field matches the regex pattern.
// Only the most recent pattern is kept compiled.
type RegexProvider struct {
	opts     Options
	last     *compiledPattern
	cacheMu  sync.RWMutex
	compiles int
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{opts: applyOptions(opts)}
}

// Match returns true if any configured field matches the regex pattern.
// An invalid pattern matches nothing; a half-typed pattern must not abort the view.
func (p *RegexProvider) Match(r Record, query string) bool {
	if query == "" {
		return true
	}

	re, err := p.getRegex(query)
	if err != nil {
		return false
	}

	for _, value := range fieldValues(r, p.opts.Fields, false) {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// getRegex returns the compiled pattern, reusing the last compile result
// for the same pattern, whether it succeeded or not.
func (p *RegexProvider) getRegex(pattern string) (*regexp.Regexp, error) {
	p.cacheMu.RLock()
	last := p.last
	p.cacheMu.RUnlock()
	if last != nil && last.pattern == pattern {
		return last.re, last.err
	}

	expr := pattern
	if p.opts.CaseInsensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)

	p.cacheMu.Lock()
	p.last = &compiledPattern{pattern: pattern, re: re, err: err}
	p.compiles++
	p.cacheMu.Unlock()

	return re, err
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return ModeRegex
}
