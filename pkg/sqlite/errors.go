package sqlite

import (
	"database/sql"
	"errors"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrFailedToOpenDB          = errors.New("failed to open sqlite database")
	ErrEmptyPath               = errors.New("empty sqlite path, use SQLITE_PATH env var")
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
	ErrMigrationsNotProvided   = errors.New("migrations filesystem not provided")
)

// IsNotFoundError reports whether err is sql.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsUniqueViolationError reports whether err is a UNIQUE constraint violation.
// Primary key collisions are reported by IsPrimaryKeyViolationError.
func IsUniqueViolationError(err error) bool {
	return hasCode(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE)
}

func IsPrimaryKeyViolationError(err error) bool {
	return hasCode(err, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}

// hasCode matches the extended result code, which the driver enables on every connection.
func hasCode(err error, code int) bool {
	if err == nil {
		return false
	}

	var sqlErr *sqlitedrv.Error
	return errors.As(err, &sqlErr) && sqlErr.Code() == code
}
