// Package validator provides small declarative validation rules with
// translation-friendly error metadata.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules and aggregates the failures into
// ValidationErrors, which implements error and can be inspected per field.
//
// The package also bridges bounded text fields: Bounded builds a Rule from a
// bounded.Limits type, and FromLengthError converts the *bounded.LengthError
// returned by bounded.New or any of its decoders into a field-level
// ValidationError with the `validation.min_length` or `validation.max_length`
// translation key.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("handle", req.Handle.String()),
//	    validator.Bounded[HandleLimits]("handle", req.Handle.String()),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// MinLen and MaxLen count Unicode code points, the default bounded unit.
// Bounded and FromLengthError report in the unit of the limits type, so a
// byte-limited field reads "must be at most 128 bytes long".
package validator
