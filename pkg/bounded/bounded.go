package bounded

import (
	"log/slog"
	"unicode/utf8"
)

// Limits supplies the inclusive length bounds of a Field.
// Implementations are expected to be zero-size types with value receivers.
type Limits interface {
	MinLen() int
	MaxLen() int
}

// Unit selects how a field's length is measured.
type Unit uint8

const (
	// Runes counts Unicode code points. It is the default.
	Runes Unit = iota
	// Bytes counts UTF-8 bytes.
	Bytes
)

func (u Unit) String() string {
	if u == Bytes {
		return "bytes"
	}
	return "runes"
}

type unitLimits interface {
	Unit() Unit
}

// Field is a text value whose length lies within the bounds of L.
// The zero Field is unset and holds the empty string.
type Field[L Limits] struct {
	value string
	set   bool
}

// New validates value against the bounds of L and wraps it unchanged.
// The lower bound is checked before the upper bound.
func New[L Limits](value string) (Field[L], error) {
	if err := Validate[L](value); err != nil {
		return Field[L]{}, err
	}
	return Field[L]{value: value, set: true}, nil
}

// MustNew is like New but panics if value is out of bounds.
// It is meant for package-level values and tests.
func MustNew[L Limits](value string) Field[L] {
	f, err := New[L](value)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate reports whether value fits the bounds of L without constructing a Field.
func Validate[L Limits](value string) error {
	var l L
	minLen, maxLen := l.MinLen(), l.MaxLen()
	unit := unitOf(l)
	n := measure(l, value)

	switch {
	case n < minLen:
		return &LengthError{Kind: TooShort, Unit: unit, Len: n, Min: minLen, Max: maxLen}
	case n > maxLen:
		return &LengthError{Kind: TooLong, Unit: unit, Len: n, Min: minLen, Max: maxLen}
	}
	return nil
}

// Bounds returns the inclusive bounds of L.
func Bounds[L Limits]() (minLen, maxLen int) {
	var l L
	return l.MinLen(), l.MaxLen()
}

// UnitOf returns the unit L measures length in.
func UnitOf[L Limits]() Unit {
	var l L
	return unitOf(l)
}

// String returns the wrapped text exactly as it was supplied.
func (f Field[L]) String() string {
	return f.value
}

// Len returns the length of the wrapped text in the unit used by L.
func (f Field[L]) Len() int {
	var l L
	return measure(l, f.value)
}

// IsZero reports whether f was never set by New or a decoder.
func (f Field[L]) IsZero() bool {
	return !f.set
}

// LogValue implements slog.LogValuer.
func (f Field[L]) LogValue() slog.Value {
	if !f.set {
		return slog.StringValue("")
	}
	return slog.StringValue(f.value)
}

func unitOf(l Limits) Unit {
	if u, ok := l.(unitLimits); ok {
		return u.Unit()
	}
	return Runes
}

func measure(l Limits, value string) int {
	if unitOf(l) == Bytes {
		return len(value)
	}
	return utf8.RuneCountInString(value)
}
