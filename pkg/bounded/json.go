package bounded

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var jsonNull = []byte("null")

// MarshalJSON encodes the wrapped text as a JSON string, or null when f is unset.
func (f Field[L]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return jsonNull, nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON decodes a JSON string through New.
// JSON null leaves f unset.
func (f *Field[L]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*f = Field[L]{}
		return nil
	}
	if len(data) == 0 || data[0] != '"' {
		return fmt.Errorf("%w: got JSON %s", ErrNotString, data)
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return f.assign(s)
}

// assign replaces f with a validated field or leaves it untouched on error.
func (f *Field[L]) assign(s string) error {
	v, err := New[L](s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
