// Package migrations embeds the SQL schema so the migration script and the
// storage integration tests apply the same files.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var FS embed.FS

// Up applies every pending migration to db and reports the schema version
// before and after.
func Up(db *sql.DB) (preVersion, postVersion uint, err error) {
	source, err := iofs.New(FS, ".")
	if err != nil {
		return 0, 0, fmt.Errorf("iofs.New: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, fmt.Errorf("postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, 0, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}

	preVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, 0, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preVersion, 0, fmt.Errorf("m.Up: %w", err)
	}

	postVersion, _, err = m.Version()
	if err != nil {
		return preVersion, 0, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	return preVersion, postVersion, nil
}
