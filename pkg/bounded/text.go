package bounded

// MarshalText implements encoding.TextMarshaler.
func (f Field[L]) MarshalText() ([]byte, error) {
	return []byte(f.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by calling New.
// Form and query binders reach bounded fields through this method.
func (f *Field[L]) UnmarshalText(text []byte) error {
	return f.assign(string(text))
}

// MarshalBinary implements encoding.BinaryMarshaler so a field can be passed
// directly as a Redis command argument.
func (f Field[L]) MarshalBinary() ([]byte, error) {
	return []byte(f.value), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler by calling New.
func (f *Field[L]) UnmarshalBinary(data []byte) error {
	return f.assign(string(data))
}
