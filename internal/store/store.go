// Package store persists battle reports in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Astreocclu/arc-citadel-sub001/internal/battle"
)

// ErrNotFound indicates no report exists for the requested id.
var ErrNotFound = errors.New("report not found")

// Store wraps the SQLite handle.
type Store struct {
	sqlDB *sql.DB
}

// ReportRow is a stored battle report with its metadata.
type ReportRow struct {
	ID        int64         `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Report    battle.Report `json:"report"`
}

const schema = `
CREATE TABLE IF NOT EXISTS battle_reports (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at INTEGER NOT NULL,
    winner TEXT NOT NULL,
    outcome TEXT NOT NULL,
    ticks INTEGER NOT NULL,
    report TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_battle_reports_created_at ON battle_reports(created_at);
`

// Open opens (or creates) the report store at path. Use ":memory:" for an
// ephemeral store in tests.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveReport inserts one battle report and returns its id.
func (s *Store) SaveReport(ctx context.Context, report battle.Report) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("marshal report: %w", err)
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO battle_reports (created_at, winner, outcome, ticks, report) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().UnixMilli(), report.Winner, report.Outcome, report.Ticks, string(payload))
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report id: %w", err)
	}
	return id, nil
}

// GetReport fetches one report by id.
func (s *Store) GetReport(ctx context.Context, id int64) (ReportRow, error) {
	if err := ctx.Err(); err != nil {
		return ReportRow{}, err
	}
	var (
		row     ReportRow
		created int64
		payload string
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, created_at, report FROM battle_reports WHERE id = ?`, id).
		Scan(&row.ID, &created, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return ReportRow{}, ErrNotFound
	}
	if err != nil {
		return ReportRow{}, fmt.Errorf("query report: %w", err)
	}
	row.CreatedAt = time.UnixMilli(created).UTC()
	if err := json.Unmarshal([]byte(payload), &row.Report); err != nil {
		return ReportRow{}, fmt.Errorf("unmarshal report: %w", err)
	}
	return row, nil
}

// ListReports returns the most recent reports, newest first.
func (s *Store) ListReports(ctx context.Context, limit int) ([]ReportRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, created_at, report FROM battle_reports ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []ReportRow
	for rows.Next() {
		var (
			row     ReportRow
			created int64
			payload string
		)
		if err := rows.Scan(&row.ID, &created, &payload); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		row.CreatedAt = time.UnixMilli(created).UTC()
		if err := json.Unmarshal([]byte(payload), &row.Report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}
