package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/staffview/internal/colors"
	"golang.org/x/text/language"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

type validatorRegistry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

var registry = &validatorRegistry{
	validators: make(map[string]Validator),
}

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	registry.validators[key] = validator
}

func getValidator(key string) Validator {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.validators[key]
}

// PositiveIntValidator returns a validator that ensures a value is a positive integer.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a positive integer, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// EnumValidator returns a validator that ensures a value is one of the allowed values.
// Matching is case-insensitive and the value is stored lowercased.
func EnumValidator(allowed map[string]bool) Validator {
	return enumValidator(allowed, false)
}

// CaseSensitiveEnumValidator is EnumValidator for values whose case matters,
// such as camelCase sort field names.
func CaseSensitiveEnumValidator(allowed map[string]bool) Validator {
	return enumValidator(allowed, true)
}

func enumValidator(allowed map[string]bool, caseSensitive bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := value
		if !caseSensitive {
			normalized = strings.ToLower(value)
		}
		if !allowed[normalized] {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be one of: %s; using default: %s", key, value, allowedValues(allowed), defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

// BoolValidator returns a validator that normalizes and validates boolean values.
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', must be one of: 1, true, yes, on, 0, false, no, off; using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

// LocaleValidator accepts BCP 47 language tags and stores them in canonical form.
func LocaleValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		tag, err := language.Parse(value)
		if err != nil {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': not a BCP 47 language tag, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return tag.String(), nil
	}
}

func initValidators() {
	RegisterValidator("source_backend", EnumValidator(map[string]bool{"json": true, "tsv": true, "sqlite": true}))
	RegisterValidator("page_size", EnumValidator(map[string]bool{"5": true, "10": true, "20": true, "50": true}))
	RegisterValidator("sort_field", CaseSensitiveEnumValidator(map[string]bool{
		"name":       true,
		"department": true,
		"position":   true,
		"hireDate":   true,
		"salary":     true,
	}))
	RegisterValidator("sort_order", EnumValidator(map[string]bool{"asc": true, "desc": true}))
	RegisterValidator("search_mode", EnumValidator(map[string]bool{"substring": true, "token": true, "regex": true}))
	RegisterValidator("collation_locale", LocaleValidator())
	RegisterValidator("table_format", EnumValidator(map[string]bool{"default": true, "minimal": true}))
	RegisterValidator("output_format", EnumValidator(map[string]bool{"table": true, "minimal": true, "json": true}))

	boolValidator := BoolValidator()
	RegisterValidator("debug", boolValidator)
	RegisterValidator("quiet", boolValidator)

	RegisterValidator("logging_enabled", boolValidator)
	RegisterValidator("logging_level", EnumValidator(map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}))
	RegisterValidator("logging_max_files", PositiveIntValidator())
}

// normalizeBool converts various boolean representations to "true"/"false".
func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}

// allowedValues returns a sorted, comma-separated list of allowed values.
func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
