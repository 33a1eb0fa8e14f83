package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/validator"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a strict JSON body binder.
//
// The body must be a single JSON object. Unknown members and trailing data are
// rejected. Members are decoded into their struct fields one at a time so that
// every bounded field that is out of range is reported, not just the first.
//
// Example:
//
//	type CreateProfileRequest struct {
//		Handle bounded.Field[HandleLimits] `json:"handle"`
//		Bio    bounded.Field[BioLimits]    `json:"bio"`
//	}
//
//	var req CreateProfileRequest
//	err := binder.JSON()(r, &req)
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
		}
		if mt := mediaType(contentType); mt != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		rv, err := structValue(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		members, err := readJSONObject(decoder)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return bindJSONMembers(rv, members)
	}
}

type jsonMember struct {
	name  string
	value json.RawMessage
}

// readJSONObject reads one JSON object and returns its members in document order.
func readJSONObject(dec *json.Decoder) ([]jsonMember, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("json: expected object, got %v", tok)
	}

	var members []jsonMember
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: expected member name, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, unexpectedEOF(err)
		}
		members = append(members, jsonMember{name: name, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	return members, nil
}

// unexpectedEOF keeps a truncated object from reading as an empty body.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// bindJSONMembers decodes each member into the struct field it names.
// Members are applied in document order, so a repeated member wins over
// earlier ones like it does with encoding/json.
func bindJSONMembers(rv reflect.Value, members []jsonMember) error {
	fields := jsonFields(rv.Type())

	var verrs validator.ValidationErrors
	for _, m := range members {
		idx, ok := lookupJSONField(fields, m.name)
		if !ok {
			return fmt.Errorf("%w: json: unknown field %q", ErrFailedToParseJSON, m.name)
		}

		target := reflect.New(rv.Field(idx).Type())
		dec := json.NewDecoder(bytes.NewReader(m.value))
		dec.DisallowUnknownFields()

		if err := dec.Decode(target.Interface()); err != nil {
			if verr, ok := validator.FromLengthError(m.name, err); ok {
				verrs.Add(verr)
				continue
			}
			return fmt.Errorf("%w: field %s: %v", ErrFailedToParseJSON, m.name, err)
		}
		rv.Field(idx).Set(target.Elem())
	}

	if !verrs.IsEmpty() {
		return verrs
	}
	return nil
}

type jsonField struct {
	name  string
	index int
}

// jsonFields lists the settable fields by JSON member name, in struct order.
func jsonFields(rt reflect.Type) []jsonField {
	fields := make([]jsonField, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if tag := sf.Tag.Get("json"); tag != "" {
			if tag == "-" {
				continue
			}
			if n, _, _ := strings.Cut(tag, ","); n != "" {
				name = n
			}
		}
		fields = append(fields, jsonField{name: name, index: i})
	}
	return fields
}

// lookupJSONField prefers an exact match and falls back to the first field,
// in struct order, whose name matches ignoring case.
func lookupJSONField(fields []jsonField, name string) (int, bool) {
	for _, f := range fields {
		if f.name == name {
			return f.index, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.name, name) {
			return f.index, true
		}
	}
	return 0, false
}
