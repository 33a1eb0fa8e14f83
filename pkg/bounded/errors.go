package bounded

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrTooShort is matched by a LengthError whose value is below the lower bound.
	ErrTooShort = errors.New("value too short")

	// ErrTooLong is matched by a LengthError whose value is above the upper bound.
	ErrTooLong = errors.New("value too long")

	// ErrNotString is returned by decoders when the encoded value is not text.
	ErrNotString = errors.New("value is not a string")
)

// Kind tells which bound a value violated.
type Kind uint8

const (
	TooShort Kind = iota + 1
	TooLong
)

func (k Kind) String() string {
	switch k {
	case TooShort:
		return "too_short"
	case TooLong:
		return "too_long"
	default:
		return "unknown"
	}
}

// LengthError describes a value rejected by New.
type LengthError struct {
	Kind Kind
	Unit Unit
	Len  int // measured length of the rejected value, in Unit
	Min  int
	Max  int
}

func (e *LengthError) Error() string {
	if e.Kind == TooShort {
		return fmt.Sprintf("length %d is shorter than minimum %d", e.Len, e.Min)
	}
	return fmt.Sprintf("length %d is longer than maximum %d", e.Len, e.Max)
}

// Unwrap returns ErrTooShort or ErrTooLong so errors.Is works on wrapped errors.
func (e *LengthError) Unwrap() error {
	switch e.Kind {
	case TooShort:
		return ErrTooShort
	case TooLong:
		return ErrTooLong
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (e *LengthError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", e.Kind.String()),
		slog.String("unit", e.Unit.String()),
		slog.Int("len", e.Len),
		slog.Int("min", e.Min),
		slog.Int("max", e.Max),
	)
}

// IsTooShort reports whether err is, or wraps, a lower bound violation.
func IsTooShort(err error) bool {
	return errors.Is(err, ErrTooShort)
}

// IsTooLong reports whether err is, or wraps, an upper bound violation.
func IsTooLong(err error) bool {
	return errors.Is(err, ErrTooLong)
}

// AsLengthError extracts the LengthError from err, if any.
func AsLengthError(err error) (*LengthError, bool) {
	var lerr *LengthError
	if errors.As(err, &lerr) {
		return lerr, true
	}
	return nil, false
}
