package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// The blob schema ships inside the binary so a fresh data file can be
// created anywhere without external assets.
//
//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrateUp brings the blob schema up to date. Every *.up.sql file runs
// in lexical order; the statements are idempotent, so re-opening an
// already-migrated file is safe.
func MigrateUp(db *sql.DB) error {
	return runMigrations(db, ".up.sql")
}

// MigrateDown tears the blob schema back down, mainly for tests.
func MigrateDown(db *sql.DB) error {
	return runMigrations(db, ".down.sql")
}

func runMigrations(db *sql.DB, suffix string) error {
	names, err := fs.Glob(migrationFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
