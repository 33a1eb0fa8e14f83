package binder

import (
	"encoding"
	"fmt"
	"mime"
	"reflect"
	"strconv"
	"strings"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/validator"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// structValue returns the struct v points to.
func structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, ErrInvalidTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}
	return rv, nil
}

// mediaType returns the content type without parameters.
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		if idx := strings.Index(contentType, ";"); idx != -1 {
			contentType = contentType[:idx]
		}
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

// bindToStruct binds values to a struct using reflection.
// tagName specifies which struct tag to use (e.g., "query", "form").
// Length violations are collected and returned as validator.ValidationErrors;
// any other conversion failure is wrapped in bindErr and returned immediately.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv, err := structValue(v)
	if err != nil {
		return fmt.Errorf("%w: %w", bindErr, err)
	}

	rt := rv.Type()
	var verrs validator.ValidationErrors

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		fieldValues, exists := values[paramName]
		if !exists || len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			if verr, ok := validator.FromLengthError(paramName, err); ok {
				verrs.Add(verr)
				continue
			}
			return fmt.Errorf("%w: field %s: %v", bindErr, paramName, err)
		}
	}

	if !verrs.IsEmpty() {
		return verrs
	}
	return nil
}

// parseFieldTag returns the parameter name for field and whether to skip it.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name), false
	}
	return name, false
}

// setFieldValue sets the field value from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if reflect.PointerTo(fieldType).Implements(textUnmarshalerType) {
		if len(values) == 0 {
			return nil
		}
		// Decode into a fresh value so a failure leaves the field untouched.
		ptr := reflect.New(fieldType)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(values[0])); err != nil {
			return err
		}
		field.Set(ptr.Elem())
		return nil
	}

	if fieldType.Kind() == reflect.Ptr {
		elem := reflect.New(fieldType.Elem())
		if err := setFieldValue(elem.Elem(), fieldType.Elem(), values); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType)
	}

	return nil
}

// setSliceValue sets slice field values, one element per value.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	elemType := fieldType.Elem()
	slice := reflect.MakeSlice(fieldType, len(values), len(values))

	for i, value := range values {
		if err := setFieldValue(slice.Index(i), elemType, []string{value}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
