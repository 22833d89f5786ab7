// Package search provides the text matchers behind the roster search box.
// It supports multiple search strategies (substring, regex, token-based) through
// a common Provider interface so the CLI and TUI share one matching rule.
package search

import (
	"fmt"
	"strings"
)

// Record is anything that exposes named text fields to a search provider.
type Record interface {
	// SearchField returns the value of the named field, or "" when unknown.
	SearchField(name string) string
}

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the record matches the search query.
	Match(r Record, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Mode names accepted by New.
const (
	ModeSubstring = "substring"
	ModeToken     = "token"
	ModeRegex     = "regex"
)

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in
}

// DefaultFields are the employee fields the search box looks at.
var DefaultFields = []string{"firstName", "lastName", "email", "department", "position"}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	fields := make([]string, len(DefaultFields))
	copy(fields, DefaultFields)
	return Options{
		CaseInsensitive: true,
		Fields:          fields,
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the provider registered under mode.
func New(mode string, opts ...Option) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeSubstring:
		return NewSubstringProvider(opts...), nil
	case ModeToken:
		return NewTokenProvider(opts...), nil
	case ModeRegex:
		return NewRegexProvider(opts...), nil
	default:
		return nil, fmt.Errorf("unknown search mode: %s", mode)
	}
}

// fieldValues returns the non-empty values of the configured fields.
func fieldValues(r Record, fields []string, lower bool) []string {
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		v := r.SearchField(field)
		if v == "" {
			continue
		}
		if lower {
			v = strings.ToLower(v)
		}
		values = append(values, v)
	}
	return values
}
