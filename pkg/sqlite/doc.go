// Package sqlite opens SQLite databases through database/sql with the pure-Go
// modernc.org/sqlite driver and applies goose migrations from an fs.FS.
//
//	var cfg sqlite.Config
//	config.MustLoad(&cfg)
//
//	db, err := sqlite.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	if err := sqlite.Migrate(ctx, db, migrations.FS, cfg, log); err != nil {
//		return err
//	}
//
// Open limits the pool to a single connection. SQLite serialises writers
// anyway, and an in-memory database only exists on the connection that
// created it.
package sqlite
