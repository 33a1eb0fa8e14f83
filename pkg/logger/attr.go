package logger

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors", indexed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// Validation records field messages under the key "validation".
// Empty errors yield an empty Attr.
func Validation(verrs validator.ValidationErrors) slog.Attr {
	if verrs.IsEmpty() {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(verrs))
	for _, field := range verrs.Fields() {
		as = append(as, slog.String(field, strings.Join(verrs.Get(field), "; ")))
	}
	return Group("validation", as...)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
