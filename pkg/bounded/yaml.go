package bounded

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const yamlNullTag = "!!null"

// MarshalYAML implements yaml.Marshaler. An unset field encodes as null.
func (f Field[L]) MarshalYAML() (any, error) {
	if !f.set {
		return nil, nil
	}
	return f.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted;
// a null scalar leaves f unset.
func (f *Field[L]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: yaml node kind %d", ErrNotString, node.Line, node.Kind)
	}
	if node.ShortTag() == yamlNullTag {
		*f = Field[L]{}
		return nil
	}
	return f.assign(node.Value)
}
