// Package bounded provides text fields whose inclusive length bounds are part
// of the field's type.
//
// Go has no integer type parameters, so the bounds travel in a zero-size
// "limits" type that implements the Limits interface. Each bound pair is its
// own named type, which makes Field[UsernameLimits] and Field[BioLimits]
// distinct types that cannot be assigned to each other.
//
// # Usage
//
//	type UsernameLimits struct{}
//
//	func (UsernameLimits) MinLen() int { return 3 }
//	func (UsernameLimits) MaxLen() int { return 32 }
//
//	type Username = bounded.Field[UsernameLimits]
//
//	name, err := bounded.New[UsernameLimits](input)
//	if err != nil {
//		var lerr *bounded.LengthError
//		if errors.As(err, &lerr) {
//			// lerr.Kind is bounded.TooShort or bounded.TooLong
//		}
//	}
//	fmt.Println(name.String())
//
// # Length
//
// Length is measured in Unicode code points. A limits type may switch to raw
// byte length by also implementing `Unit() bounded.Unit` and returning
// bounded.Bytes. Grapheme clusters are not counted.
//
// The relationship between the two bounds is not checked: a limits type whose
// MinLen is greater than its MaxLen is valid Go and simply rejects every input.
//
// # Encoding
//
// Field implements the JSON, text, binary, YAML, BSON, database/sql and pgx
// text encoding interfaces. Every decoder goes through New, so a decoded field
// satisfies its bounds or the decode fails. Explicit nulls decode to the zero
// Field, which IsZero reports as unset.
package bounded
