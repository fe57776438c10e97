package validator

import (
	"fmt"
	"sort"
	"strings"
)

// Validator collects every violated rule, keyed by field name.
type Validator struct {
	Errors map[string][]string
}

// New returns an empty Validator
func New() *Validator {
	return &Validator{Errors: make(map[string][]string)}
}

// Valid returns true if no violation was recorded
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records a violation for key. Identical messages are kept once.
func (v *Validator) AddError(key, message string) {
	for _, existing := range v.Errors[key] {
		if existing == message {
			return
		}
	}
	v.Errors[key] = append(v.Errors[key], message)
}

// Check records a violation for key when ok is false
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Rule is a single check over a value of type T.
type Rule[T any] func(v *Validator, value T)

// Apply runs every rule against value and reports whether the validator is still valid.
// Rules never short-circuit each other.
func Apply[T any](v *Validator, value T, rules ...Rule[T]) bool {
	for _, rule := range rules {
		rule(v, value)
	}
	return v.Valid()
}

// ValidationError is the aggregated failure of a validation pass.
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

// NewValidationError copies errors into a ValidationError
func NewValidationError(message string, errors map[string][]string) *ValidationError {
	copied := make(map[string][]string, len(errors))
	for k, msgs := range errors {
		copied[k] = append([]string(nil), msgs...)
	}
	return &ValidationError{Message: message, Errors: copied}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Errors[k], ", ")))
	}
	if len(parts) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}
