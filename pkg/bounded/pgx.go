package bounded

import "github.com/jackc/pgx/v5/pgtype"

// TextValue implements pgtype.TextValuer so pgx encodes the field as text.
func (f Field[L]) TextValue() (pgtype.Text, error) {
	return pgtype.Text{String: f.value, Valid: f.set}, nil
}

// ScanText implements pgtype.TextScanner. An invalid (NULL) text leaves f unset.
func (f *Field[L]) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*f = Field[L]{}
		return nil
	}
	return f.assign(v.String)
}
