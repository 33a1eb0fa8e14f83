package profile

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/bounded"
)

type HandleLimits struct{}

func (HandleLimits) MinLen() int { return 3 }
func (HandleLimits) MaxLen() int { return 32 }

type DisplayNameLimits struct{}

func (DisplayNameLimits) MinLen() int { return 1 }
func (DisplayNameLimits) MaxLen() int { return 64 }

type BioLimits struct{}

func (BioLimits) MinLen() int { return 0 }
func (BioLimits) MaxLen() int { return 280 }

type (
	Handle      = bounded.Field[HandleLimits]
	DisplayName = bounded.Field[DisplayNameLimits]
	Bio         = bounded.Field[BioLimits]
)

// Profile is a stored user profile.
type Profile struct {
	ID          uuid.UUID   `json:"id"`
	Handle      Handle      `json:"handle"`
	DisplayName DisplayName `json:"display_name"`
	Bio         Bio         `json:"bio"`
	CreatedAt   time.Time   `json:"created_at"`
}

// New creates a profile with a fresh id. An unset bio is stored as empty text.
func New(handle Handle, displayName DisplayName, bio Bio) Profile {
	if bio.IsZero() {
		bio = bounded.MustNew[BioLimits]("")
	}
	return Profile{
		ID:          uuid.New(),
		Handle:      handle,
		DisplayName: displayName,
		Bio:         bio,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

// LogValue implements slog.LogValuer. The bio is summarised by its length.
func (p Profile) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", p.ID.String()),
		slog.Any("handle", p.Handle),
		slog.Int("bio_len", p.Bio.Len()),
	)
}
