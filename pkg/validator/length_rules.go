package validator

import (
	"github.com/pmalmgren/constgeneric-field-limits/pkg/bounded"
)

// Bounded validates value against the bounds of L, in the unit L measures.
// The reported error names whichever bound value violates.
func Bounded[L bounded.Limits](field, value string) Rule {
	err := bounded.Validate[L](value)
	rule := Rule{Check: func() bool { return err == nil }}

	if verr, ok := FromLengthError(field, err); ok {
		rule.Error = verr
	} else {
		minLen, _ := bounded.Bounds[L]()
		rule.Error = minLengthError(field, minLen, -1, bounded.UnitOf[L]())
	}
	return rule
}

// FromLengthError converts a *bounded.LengthError found in err's chain into a
// ValidationError for field. It reports false when err holds no length error.
func FromLengthError(field string, err error) (ValidationError, bool) {
	lerr, ok := bounded.AsLengthError(err)
	if !ok {
		return ValidationError{}, false
	}

	switch lerr.Kind {
	case bounded.TooShort:
		return minLengthError(field, lerr.Min, lerr.Len, lerr.Unit), true
	case bounded.TooLong:
		return maxLengthError(field, lerr.Max, lerr.Len, lerr.Unit), true
	}
	return ValidationError{}, false
}
