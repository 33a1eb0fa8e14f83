package sqlite

import "time"

type Config struct {
	// Path is the database file, or ":memory:".
	Path string `env:"SQLITE_PATH" envDefault:"fieldlimits.db"`

	// BusyTimeout is how long a statement waits on a locked database.
	BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"5s"`

	// MigrationsTable stores the applied migration version.
	MigrationsTable string `env:"SQLITE_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}
