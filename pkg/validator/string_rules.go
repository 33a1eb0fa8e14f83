package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/bounded"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: minLengthError(field, min, -1, bounded.Runes),
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: maxLengthError(field, max, -1, bounded.Runes),
	}
}

// minLengthError builds the min_length error; length < 0 omits the measured length.
func minLengthError(field string, min, length int, unit bounded.Unit) ValidationError {
	values := map[string]any{
		"field": field,
		"min":   min,
		"unit":  unit.String(),
	}
	if length >= 0 {
		values["length"] = length
	}
	return ValidationError{
		Field:             field,
		Message:           fmt.Sprintf("must be at least %d %s long", min, unitNoun(unit)),
		TranslationKey:    "validation.min_length",
		TranslationValues: values,
	}
}

func maxLengthError(field string, max, length int, unit bounded.Unit) ValidationError {
	values := map[string]any{
		"field": field,
		"max":   max,
		"unit":  unit.String(),
	}
	if length >= 0 {
		values["length"] = length
	}
	return ValidationError{
		Field:             field,
		Message:           fmt.Sprintf("must be at most %d %s long", max, unitNoun(unit)),
		TranslationKey:    "validation.max_length",
		TranslationValues: values,
	}
}

func unitNoun(u bounded.Unit) string {
	if u == bounded.Bytes {
		return "bytes"
	}
	return "characters"
}
