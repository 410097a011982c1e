package database

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"livefeedback/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// EnsureSchema applies every pending embedded migration. It is safe to call
// on each start.
func EnsureSchema(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("%w: migration init: %v", domain.ErrStorageUnavailable, err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: migration up: %v", domain.ErrStorageUnavailable, err)
	}

	version, dirty, _ := m.Version()
	log.Printf("✅ Migrations applied (version=%d, dirty=%v)", version, dirty)
	return nil
}
