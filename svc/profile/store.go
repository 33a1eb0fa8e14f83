package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/sqlite"
)

const (
	// DefaultListLimit is used when List is given a non-positive limit.
	DefaultListLimit = 50
	// MaxListLimit caps every List call.
	MaxListLimit = 100
)

// Store persists profiles in SQLite.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create inserts p. It returns ErrHandleTaken if the handle is in use.
func (s *Store) Create(ctx context.Context, p Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, handle, display_name, bio, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID.String(), p.Handle, p.DisplayName, p.Bio, p.CreatedAt.UnixMilli(),
	)
	if sqlite.IsUniqueViolationError(err) {
		return ErrHandleTaken
	}
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// Get returns the profile with the given id or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, handle, display_name, bio, created_at FROM profiles WHERE id = ?`,
		id.String(),
	)

	p, err := scanProfile(row)
	if sqlite.IsNotFoundError(err) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile %s: %w", id, err)
	}
	return p, nil
}

// GetByHandle returns the profile with the given handle or ErrNotFound.
func (s *Store) GetByHandle(ctx context.Context, handle Handle) (Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, handle, display_name, bio, created_at FROM profiles WHERE handle = ?`,
		handle,
	)

	p, err := scanProfile(row)
	if sqlite.IsNotFoundError(err) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile by handle: %w", err)
	}
	return p, nil
}

// List returns up to limit profiles, newest first. The limit is clamped to
// MaxListLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Profile, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, handle, display_name, bio, created_at FROM profiles ORDER BY created_at DESC, handle LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]Profile, 0, limit)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (Profile, error) {
	var (
		p         Profile
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.Handle, &p.DisplayName, &p.Bio, &createdAt); err != nil {
		return Profile{}, err
	}
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	return p, nil
}
