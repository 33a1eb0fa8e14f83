package bounded

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MarshalBSONValue implements bson.ValueMarshaler. The field is stored as a
// BSON string, or BSON null when unset.
func (f Field[L]) MarshalBSONValue() (byte, []byte, error) {
	if !f.set {
		return byte(bson.TypeNull), nil, nil
	}
	typ, data, err := bson.MarshalValue(f.value)
	return byte(typ), data, err
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. BSON null and undefined
// leave f unset.
func (f *Field[L]) UnmarshalBSONValue(typ byte, data []byte) error {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}

	switch raw.Type {
	case bson.TypeNull, bson.TypeUndefined:
		*f = Field[L]{}
		return nil
	}

	s, ok := raw.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: got BSON %s", ErrNotString, raw.Type)
	}
	return f.assign(s)
}
