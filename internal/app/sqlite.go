package app

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/daytona/config"

	_ "modernc.org/sqlite" // pure Go SQLite driver for database/sql
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitSQLite opens the SQLite store at the configured path.
//
// Behavior:
//   - Opens a database handle with sql.Open using the "sqlite" driver.
//   - Pins the pool to a single connection: a :memory: database exists per
//     connection, and one connection also serializes statement execution.
//   - Pings the store to validate it and enables foreign-key enforcement.
//
// Returns:
//   - *sql.DB: an open handle to the store.
//   - error: if opening, pinging, or the pragma fails.
func InitSQLite(cfg config.Config) (*sql.DB, error) {
	db, err := sqlOpener("sqlite", cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// sqliteOpener is an indirection used by InitializeApp; overridden in tests
// to avoid touching a real store.
var sqliteOpener = InitSQLite
