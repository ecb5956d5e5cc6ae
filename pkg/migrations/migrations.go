// Package migrations applies the SQL schema for the waitlist table. The
// migrations ship inside the binary; Config.Dir points at a directory on disk
// instead.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var embedded embed.FS

// Embedded returns the bundled migration files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

type migrator interface {
	Up() error
	Close() (sourceErr error, databaseErr error)
}

var driverFactory = func(db *sql.DB, cfg Config) (database.Driver, error) {
	return postgres.WithInstance(db, &postgres.Config{MigrationsTable: cfg.MigrationsTable})
}

var migratorFactory = func(sourceURL string, driver database.Driver) (migrator, error) {
	return migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
}

var sourceMigratorFactory = func(src source.Driver, driver database.Driver) (migrator, error) {
	return migrate.NewWithInstance("iofs", src, "postgres", driver)
}

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Config struct {
	Dir             string
	FS              fs.FS // used when Dir is empty; defaults to Embedded()
	MigrationsTable string
	Logger          Logger
}

func Up(ctx context.Context, db *sql.DB, cfg Config) error {
	if db == nil {
		return fmt.Errorf("migrations: db is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.MigrationsTable) == "" {
		cfg.MigrationsTable = "schema_migrations"
	}

	m, origin, err := open(db, cfg)
	if err != nil {
		return err
	}

	closeOnce := sync.Once{}
	closeMigrator := func() {
		closeOnce.Do(func() {
			srcErr, dbErr := m.Close()
			if cfg.Logger != nil {
				if srcErr != nil {
					cfg.Logger.Warn("Migrations source close error", "error", srcErr)
				}
				if dbErr != nil {
					cfg.Logger.Warn("Migrations db close error", "error", dbErr)
				}
			}
		})
	}
	defer closeMigrator()

	if cfg.Logger != nil {
		cfg.Logger.Info("Running SQL migrations", "source", origin, "table", cfg.MigrationsTable)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.Up()
	}()

	select {
	case <-ctx.Done():
		// migrate has no context support; closing is the only way to interrupt it.
		closeMigrator()
		return ctx.Err()
	case err := <-errCh:
		if err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				if cfg.Logger != nil {
					cfg.Logger.Info("No migrations to apply")
				}
				return nil
			}
			return fmt.Errorf("migrations: up: %w", err)
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("Migrations applied successfully")
	}
	return nil
}

func open(db *sql.DB, cfg Config) (migrator, string, error) {
	if strings.TrimSpace(cfg.Dir) != "" {
		absDir, err := filepath.Abs(cfg.Dir)
		if err != nil {
			return nil, "", fmt.Errorf("migrations: resolve dir: %w", err)
		}

		// ToSlash keeps the URL valid on Windows.
		sourceURL := (&url.URL{
			Scheme: "file",
			Path:   filepath.ToSlash(absDir),
		}).String()

		driver, err := driverFactory(db, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("migrations: postgres driver: %w", err)
		}

		m, err := migratorFactory(sourceURL, driver)
		if err != nil {
			return nil, "", fmt.Errorf("migrations: init: %w", err)
		}
		return m, absDir, nil
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = Embedded()
	}

	src, err := iofs.New(fsys, ".")
	if err != nil {
		return nil, "", fmt.Errorf("migrations: embedded source: %w", err)
	}

	driver, err := driverFactory(db, cfg)
	if err != nil {
		_ = src.Close()
		return nil, "", fmt.Errorf("migrations: postgres driver: %w", err)
	}

	m, err := sourceMigratorFactory(src, driver)
	if err != nil {
		_ = src.Close()
		return nil, "", fmt.Errorf("migrations: init: %w", err)
	}
	return m, "embedded", nil
}
