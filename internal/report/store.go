package report

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/anaik-zam/CardConvert/internal/config"
	"github.com/anaik-zam/CardConvert/internal/dispatch"
	"github.com/anaik-zam/CardConvert/internal/services"
)

// Run summarizes one converter invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	InputDir   string
	OutputDir  string
	Workers    int
	Total      int
	Failed     int
}

// Finished reports whether the run was closed out with FinishRun.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// CardOutcome is one stored per-card result within a run.
type CardOutcome struct {
	Position int
	Name     string
	Locale   string
	Class    string
	Message  string
	Error    string
}

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database under the log
// directory and verifies the schema version.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "report", "open", "ensure directories", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.LogDir, "history.db"))
}

// OpenPath opens the history database at an explicit path.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "report", "open", dbPath, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, services.Wrap(services.ErrTransient, "report", "open",
				fmt.Sprintf("apply pragma %q", pragma), execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// BeginRun inserts a new run row and returns its generated identifier.
func (s *Store) BeginRun(ctx context.Context, inputDir, outputDir string, workers int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, input_dir, output_dir, workers)
         VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano), inputDir, outputDir, workers,
	)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "report", "begin run", "", err)
	}
	return id, nil
}

// RecordOutcome stores one card result under a run.
func (s *Store) RecordOutcome(ctx context.Context, runID string, outcome dispatch.Outcome) error {
	errText := ""
	if outcome.Err != nil {
		errText = outcome.Err.Error()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO outcomes (run_id, position, name, locale, class, message, error)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, outcome.Index, outcome.Name, outcome.Locale, outcome.Class, outcome.Message, errText,
	)
	if err != nil {
		return services.Wrap(services.ErrTransient, "report", "record outcome", outcome.Name, err)
	}
	return nil
}

// FinishRun closes out a run with its final card and failure counts.
func (s *Store) FinishRun(ctx context.Context, runID string, total, failed int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, total = ?, failed = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), total, failed, runID,
	)
	if err != nil {
		return services.Wrap(services.ErrTransient, "report", "finish run", runID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return services.Wrap(services.ErrTransient, "report", "finish run", runID, err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "report", "finish run",
			fmt.Sprintf("run %s does not exist", runID), nil)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, started_at, finished_at, input_dir, output_dir, workers, total, failed
              FROM runs ORDER BY started_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "report", "list runs", "", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&run.ID, &started, &finished, &run.InputDir, &run.OutputDir,
			&run.Workers, &run.Total, &run.Failed); err != nil {
			return nil, services.Wrap(services.ErrTransient, "report", "list runs", "scan", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		if finished.Valid {
			run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished.String)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrTransient, "report", "list runs", "iterate", err)
	}
	return runs, nil
}

// RunOutcomes returns a run's card results in submission order.
func (s *Store) RunOutcomes(ctx context.Context, runID string) ([]CardOutcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, name, locale, class, message, error
         FROM outcomes WHERE run_id = ? ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "report", "run outcomes", runID, err)
	}
	defer rows.Close()

	var outcomes []CardOutcome
	for rows.Next() {
		var o CardOutcome
		if err := rows.Scan(&o.Position, &o.Name, &o.Locale, &o.Class, &o.Message, &o.Error); err != nil {
			return nil, services.Wrap(services.ErrTransient, "report", "run outcomes", "scan", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrTransient, "report", "run outcomes", "iterate", err)
	}
	return outcomes, nil
}
