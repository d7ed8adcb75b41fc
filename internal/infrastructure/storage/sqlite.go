package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"svw.info/keypad/internal/domain"
)

// ErrNotFound is returned when no report exists under the requested ID.
var ErrNotFound = errors.New("storage: report not found")

// SQLite persists reports in a single-file SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open db: %w", err)
	}
	if _, err := db.Exec(`pragma journal_mode=WAL; pragma synchronous=NORMAL; pragma busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: pragmas: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS reports (
		id          TEXT PRIMARY KEY,
		depth       INTEGER NOT NULL,
		codes       TEXT NOT NULL,
		presses     TEXT NOT NULL,
		complexity  INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at  INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(created_at);`)
	if err != nil {
		return fmt.Errorf("storage: schema: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, r *domain.Report) error {
	if r == nil || r.ID == "" {
		return errors.New("storage: invalid report: missing ID")
	}
	codes, err := json.Marshal(r.Codes)
	if err != nil {
		return fmt.Errorf("storage: encode codes: %w", err)
	}
	presses, err := json.Marshal(r.Presses)
	if err != nil {
		return fmt.Errorf("storage: encode presses: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO reports
		(id, depth, codes, presses, complexity, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			presses = excluded.presses,
			complexity = excluded.complexity,
			duration_ms = excluded.duration_ms,
			created_at = excluded.created_at`,
		r.ID, r.Depth, string(codes), string(presses), r.Complexity, r.DurationMs, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("storage: save report %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Report, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, depth, codes, presses, complexity, duration_ms, created_at
		FROM reports WHERE id = ?`, id)
	var r domain.Report
	var codes, presses string
	err := row.Scan(&r.ID, &r.Depth, &codes, &presses, &r.Complexity, &r.DurationMs, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: load report %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(codes), &r.Codes); err != nil {
		return nil, fmt.Errorf("storage: decode codes: %w", err)
	}
	if err := json.Unmarshal([]byte(presses), &r.Presses); err != nil {
		return nil, fmt.Errorf("storage: decode presses: %w", err)
	}
	return &r, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.ReportMeta, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, depth, codes, complexity, created_at
		FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("storage: list reports: %w", err)
	}
	defer rows.Close()

	var out []domain.ReportMeta
	for rows.Next() {
		var m domain.ReportMeta
		var codes string
		if err := rows.Scan(&m.ID, &m.Depth, &codes, &m.Complexity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan report: %w", err)
		}
		var texts []string
		if err := json.Unmarshal([]byte(codes), &texts); err == nil {
			m.CodeCount = len(texts)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
