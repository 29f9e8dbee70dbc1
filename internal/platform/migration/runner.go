// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

// Package migration applies the account and shelf schema migrations during
// startup, so the server never takes traffic against an out-of-date database.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Registers the pgx5:// database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// Registers the file:// source scheme for on-disk .sql migrations.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp brings the schema up to the latest version. Running against an
// already-current database is a no-op, so restarts stay safe.
//
// A dirty schema (a previous run died mid-migration) is refused outright:
// that state needs a human, not a retry loop.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, pgx5URL(dsn))
	if err != nil {
		return fmt.Errorf("migration: init: %w", err)
	}
	defer func() {
		if sourceErr, dbErr := migrator.Close(); sourceErr != nil || dbErr != nil {
			logger.Error("migration_close_failed",
				slog.Any("source_error", sourceErr),
				slog.Any("db_error", dbErr),
			)
		}
	}()

	migrator.Log = &migrateLogger{logger: logger}

	before, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: read version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: schema is dirty at version %d, resolve manually before restarting", before)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema_up_to_date", slog.Int("version", int(before)))
			return nil
		}
		return fmt.Errorf("migration: apply: %w", err)
	}

	after, _, _ := migrator.Version()
	logger.Info("schema_migrated",
		slog.Int("from_version", int(before)),
		slog.Int("to_version", int(after)),
	)
	return nil
}

// pgx5URL rewrites a postgres:// or postgresql:// URL onto the pgx5:// scheme
// golang-migrate uses to select its pgx/v5 driver. Anything else passes
// through untouched.
func pgx5URL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(dsn, scheme); found {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger bridges golang-migrate's Printf-style logger onto slog at
// debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

func (l *migrateLogger) Verbose() bool { return false }
