// Package binder binds HTTP request data to structs whose fields may be
// bounded text fields.
//
// Binders share the signature `func(r *http.Request, v any) error` and write
// into the struct pointed to by v:
//
//   - JSON()  - application/json bodies
//   - Form()  - application/x-www-form-urlencoded and multipart/form-data
//   - Query() - URL query parameters
//
// Every binder decodes bounded fields through bounded.New. Length violations
// do not stop binding: they are collected per field and returned together as
// validator.ValidationErrors, keyed by the JSON member, form field or query
// parameter name. Malformed input is reported with the package sentinel
// errors (ErrFailedToParseJSON, ErrFailedToParseForm, ErrFailedToParseQuery)
// so a handler can answer 400 for malformed input and 422 for values out of
// bounds:
//
//	var req CreateProfileRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//			// 422 with verrs.Map()
//		}
//		// 400
//	}
//
// Form and query binding support string, integer, float and bool kinds,
// slices and pointers of those, and any type implementing
// encoding.TextUnmarshaler.
package binder
