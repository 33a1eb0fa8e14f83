package bounded

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer. An unset field is written as NULL.
func (f Field[L]) Value() (driver.Value, error) {
	if !f.set {
		return nil, nil
	}
	return f.value, nil
}

// Scan implements sql.Scanner. Rows that violate the bounds fail to scan;
// NULL leaves f unset.
func (f *Field[L]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = Field[L]{}
		return nil
	case string:
		return f.assign(v)
	case []byte:
		return f.assign(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrNotString, src)
	}
}
