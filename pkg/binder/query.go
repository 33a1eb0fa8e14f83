package binder

import (
	"net/http"
)

// Query creates a query parameter binder.
//
// Supported struct tags:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"`    - skips the field
//
// Repeated parameters bind to slice fields, one element per occurrence.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
