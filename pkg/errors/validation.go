package errors

import (
	"slices"
	"strings"
)

// ValidateRange checks that an integer option lies within [lo, hi].
// The field name is used verbatim in the message so callers should pass
// the name users see in config files (e.g. "numRows").
func ValidateRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidConfig, "%s must be between %d and %d, got %d", field, lo, hi, v)
	}
	return nil
}

// ValidateFloatRange is the float64 counterpart of ValidateRange.
func ValidateFloatRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidConfig, "%s must be between %g and %g, got %g", field, lo, hi, v)
	}
	return nil
}

// ValidateOneOf checks that v is one of the allowed values.
func ValidateOneOf(field, v string, allowed ...string) error {
	if !slices.Contains(allowed, v) {
		return New(ErrCodeInvalidConfig, "%s must be one of %s, got %q", field, strings.Join(allowed, ", "), v)
	}
	return nil
}

// ValidateTypeKey validates a room type key used in registries and nodes.
//
// Keys are stored in documents and used as map keys, so the rules are strict:
//   - No empty keys
//   - Maximum length of 64 characters
//   - Only lowercase letters, digits and underscores
func ValidateTypeKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "type key cannot be empty")
	}
	if len(key) > 64 {
		return New(ErrCodeInvalidInput, "type key too long (max 64 characters)")
	}
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return New(ErrCodeInvalidInput, "type key %q contains invalid character %q", key, r)
		}
	}
	return nil
}
