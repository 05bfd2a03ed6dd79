package report

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/anaik-zam/CardConvert/internal/services"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing history databases must be deleted after a bump.
const schemaVersion = 1

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return services.Wrap(services.ErrTransient, "report", "init schema", "check schema_version table", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return services.Wrap(services.ErrTransient, "report", "init schema", "read schema version", err)
	}
	if version != schemaVersion {
		return services.Wrap(services.ErrConfiguration, "report", "init schema",
			fmt.Sprintf("history database has schema version %d, expected %d (delete %s to reset)",
				version, schemaVersion, s.path), nil)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return services.Wrap(services.ErrTransient, "report", "create schema", "begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return services.Wrap(services.ErrTransient, "report", "create schema", "apply schema", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return services.Wrap(services.ErrTransient, "report", "create schema", "record version", err)
	}
	if err := tx.Commit(); err != nil {
		return services.Wrap(services.ErrTransient, "report", "create schema", "commit", err)
	}
	return nil
}
