package requestid

import (
	"errors"
	"fmt"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/bounded"
)

// Limits bounds a request id to 1..128 bytes.
type Limits struct{}

func (Limits) MinLen() int { return 1 }
func (Limits) MaxLen() int { return 128 }
func (Limits) Unit() bounded.Unit { return bounded.Bytes }

type ID = bounded.Field[Limits]

var ErrInvalidCharacter = errors.New("request id contains an invalid character")

// Parse validates a client supplied request id.
func Parse(s string) (ID, error) {
	id, err := bounded.New[Limits](s)
	if err != nil {
		return ID{}, err
	}
	for i := 0; i < len(s); i++ {
		if !validByte(s[i]) {
			return ID{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
	}
	return id, nil
}

func validByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
