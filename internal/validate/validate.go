// SPDX-License-Identifier: MIT

// Package validate accumulates field-level validation failures for epgclean settings.
package validate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// LogLevel validates that value names one of LogLevels.
func (v *Validator) LogLevel(field, value string) {
	if _, err := ParseLogLevel(value); err != nil {
		v.AddError(field, err.Error(), value)
	}
}

// NonNegative validates that a number is non-negative (>= 0)
func (v *Validator) NonNegative(field string, value int64) {
	if value < 0 {
		v.AddError(field, fmt.Sprintf("value cannot be negative, got %d", value), value)
	}
}

// Range validates that an integer is within a specified range (inclusive)
func (v *Validator) Range(field string, value, minVal, maxVal int) {
	if value < minVal || value > maxVal {
		v.AddError(field,
			fmt.Sprintf("value must be between %d and %d, got %d", minVal, maxVal, value),
			value)
	}
}

// NonEmptyList validates that a list has at least one non-blank entry
func (v *Validator) NonEmptyList(field string, values []string) {
	for _, s := range values {
		if strings.TrimSpace(s) != "" {
			return
		}
	}
	v.AddError(field, "list must contain at least one entry", values)
}

// Unique validates that no value appears twice. Blank values are reported as well.
func (v *Validator) Unique(field string, values []string) {
	seen := make(map[string]int, len(values))
	for i, s := range values {
		s = strings.TrimSpace(s)
		if s == "" {
			v.AddError(fmt.Sprintf("%s[%d]", field, i), "value cannot be empty", s)
			continue
		}
		if prev, dup := seen[s]; dup {
			v.AddError(fmt.Sprintf("%s[%d]", field, i),
				fmt.Sprintf("duplicate of entry %d: %q", prev, s), s)
			continue
		}
		seen[s] = i
	}
}

// DistinctPaths validates that two file paths do not name the same file once
// cleaned and made absolute.
func (v *Validator) DistinctPaths(field, a, b string) {
	if a == "" || b == "" {
		return
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return
	}
	if absA == absB {
		v.AddError(field, fmt.Sprintf("must differ from %s", a), b)
	}
}
