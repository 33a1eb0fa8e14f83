package validator

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ValidationError is one failed rule. TranslationKey and TranslationValues let
// callers render Message in another language.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

type ValidationErrors []ValidationError

// Error lists every field message after the ErrValidationFailed text.
func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, err := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", err.Field, err.Message)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// ForField yields the errors recorded for field, in insertion order.
func (ve ValidationErrors) ForField(field string) iter.Seq[ValidationError] {
	return func(yield func(ValidationError) bool) {
		for _, err := range ve {
			if err.Field == field && !yield(err) {
				return
			}
		}
	}
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(err ValidationError) bool { return err.Field == field })
}

// Get returns the messages recorded for field, or nil.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for err := range ve.ForField(field) {
		messages = append(messages, err.Message)
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	return slices.Collect(ve.ForField(field))
}

// Fields returns the distinct field names in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, err := range ve {
		if !slices.Contains(fields, err.Field) {
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// Map groups messages by field for an API response body.
func (ve ValidationErrors) Map() map[string][]string {
	m := make(map[string][]string, len(ve))
	for _, err := range ve {
		m[err.Field] = append(m[err.Field], err.Message)
	}
	return m
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes rules in order and returns the failures as ValidationErrors,
// or nil if every rule passed.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
