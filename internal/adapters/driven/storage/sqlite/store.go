// Package sqlite provides the SQLite-backed module cache. Scraped modules
// survive between pipeline runs so taxonomy generation does not require
// re-scraping the catalogue.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/taxo-labs/taxo-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed module cache.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.ModuleStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.taxo/data/modules.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".taxo", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "modules.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveRun records a scrape run and its modules atomically. Modules are
// keyed by code; a later run replaces earlier rows for the same code.
func (s *Store) SaveRun(ctx context.Context, run domain.ScrapeRun, modules []domain.Module) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scrape_runs (id, term, started_at, finished_at, modules_found)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			term = excluded.term,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			modules_found = excluded.modules_found
	`, run.ID, run.Term, run.StartedAt, run.FinishedAt, run.ModulesFound)
	if err != nil {
		return fmt.Errorf("saving scrape run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO modules
			(code, run_id, url, title, description, learning_outcomes,
			 syllabus, assessment, credits, level, coordinator)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			run_id = excluded.run_id,
			url = excluded.url,
			title = excluded.title,
			description = excluded.description,
			learning_outcomes = excluded.learning_outcomes,
			syllabus = excluded.syllabus,
			assessment = excluded.assessment,
			credits = excluded.credits,
			level = excluded.level,
			coordinator = excluded.coordinator
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range modules {
		m = m.Normalised()
		outcomesJSON, err := json.Marshal(m.LearningOutcomes)
		if err != nil {
			return fmt.Errorf("marshalling outcomes: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, m.Code, run.ID, m.URL, m.Title, m.Description,
			string(outcomesJSON), m.Syllabus, m.Assessment, m.Credits, m.Level, m.Coordinator); err != nil {
			return fmt.Errorf("saving module %s: %w", m.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListModules returns all cached modules, ordered by code.
func (s *Store) ListModules(ctx context.Context) ([]domain.Module, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, url, title, description, learning_outcomes,
		       syllabus, assessment, credits, level, coordinator
		FROM modules
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("querying modules: %w", err)
	}
	defer rows.Close()

	var modules []domain.Module //nolint:prealloc // size unknown from query
	for rows.Next() {
		m, err := scanModuleRows(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating modules: %w", err)
	}

	return modules, nil
}

// GetModule retrieves one cached module by code.
func (s *Store) GetModule(ctx context.Context, code string) (*domain.Module, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT code, url, title, description, learning_outcomes,
		       syllabus, assessment, credits, level, coordinator
		FROM modules WHERE code = ?
	`, code)

	return scanModule(row)
}

// LatestRun returns the most recent scrape run.
func (s *Store) LatestRun(ctx context.Context) (*domain.ScrapeRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, term, started_at, finished_at, modules_found
		FROM scrape_runs
		ORDER BY started_at DESC
		LIMIT 1
	`)

	var run domain.ScrapeRun
	if err := row.Scan(&run.ID, &run.Term, &run.StartedAt, &run.FinishedAt, &run.ModulesFound); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning scrape run: %w", err)
	}

	return &run, nil
}

// scanModule scans a single module row.
func scanModule(row *sql.Row) (*domain.Module, error) {
	var m domain.Module
	var outcomesJSON string

	if err := row.Scan(&m.Code, &m.URL, &m.Title, &m.Description, &outcomesJSON,
		&m.Syllabus, &m.Assessment, &m.Credits, &m.Level, &m.Coordinator); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning module: %w", err)
	}

	if err := json.Unmarshal([]byte(outcomesJSON), &m.LearningOutcomes); err != nil {
		return nil, fmt.Errorf("unmarshaling outcomes: %w", err)
	}

	return &m, nil
}

// scanModuleRows scans a module from *sql.Rows.
func scanModuleRows(rows *sql.Rows) (*domain.Module, error) {
	var m domain.Module
	var outcomesJSON string

	if err := rows.Scan(&m.Code, &m.URL, &m.Title, &m.Description, &outcomesJSON,
		&m.Syllabus, &m.Assessment, &m.Credits, &m.Level, &m.Coordinator); err != nil {
		return nil, fmt.Errorf("scanning module: %w", err)
	}

	if err := json.Unmarshal([]byte(outcomesJSON), &m.LearningOutcomes); err != nil {
		return nil, fmt.Errorf("unmarshaling outcomes: %w", err)
	}

	return &m, nil
}
