package postgres

import (
	"database/sql"
	"dealTracker/internal/logger"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationStatus describes where the schema stands relative to the embedded migrations.
type MigrationStatus struct {
	Version uint
	Dirty   bool
}

// Migrate applies every pending migration.
func Migrate(databaseURL string) error {
	logger.Info("Repository: applying migrations")

	return withMigrator(databaseURL, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.Error("Repository: migration failed", err)
			return fmt.Errorf("migrate up: %w", err)
		}
		version, dirty, err := m.Version()
		if err != nil {
			logger.Error("Repository: read migration version", err)
			return fmt.Errorf("migration version: %w", err)
		}
		logger.Info("Repository: migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	})
}

// Down rolls every migration back.
func Down(databaseURL string) error {
	logger.Info("Repository: rolling back migrations")

	return withMigrator(databaseURL, func(m *migrate.Migrate) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.Error("Repository: rollback failed", err)
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info("Repository: migrations rolled back")
		return nil
	})
}

func Status(databaseURL string) (*MigrationStatus, error) {
	var status MigrationStatus
	err := withMigrator(databaseURL, func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("migration version: %w", err)
		}
		status = MigrationStatus{Version: version, Dirty: dirty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func withMigrator(databaseURL string, fn func(*migrate.Migrate) error) error {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Error("Repository: close migration source", srcErr)
		}
		if dbErr != nil {
			logger.Error("Repository: close migration driver", dbErr)
		}
	}()

	return fn(m)
}
