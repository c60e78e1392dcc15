// Package storage persists operator-local state, currently saved filter
// presets, in SQLite. Nothing report data ever lands here; fetched pages
// are never cached.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/bekendz87/droh-admin/internal/report"
)

// ErrPresetNotFound is returned when a named preset does not exist.
var ErrPresetNotFound = errors.New("preset not found")

// Preset is one saved filter configuration for a report route.
type Preset struct {
	CreatedAt time.Time
	Values    report.ValueMap
	Report    string
	Name      string
}

// PresetStore keeps filter presets in a local SQLite database.
type PresetStore struct {
	db     *sql.DB
	dbPath string
}

// NewPresetStore opens (and if needed creates) the preset database.
func NewPresetStore(dbPath string) (*PresetStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PresetStore{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *PresetStore) Close() error {
	return s.db.Close()
}

func (s *PresetStore) migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS filter_presets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		report TEXT NOT NULL,
		name TEXT NOT NULL,
		fields TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(report, name)
	)`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate preset schema: %w", err)
	}
	return nil
}

// Save upserts a preset by (report, name).
func (s *PresetStore) Save(ctx context.Context, p Preset) error {
	if p.Report == "" || p.Name == "" {
		return fmt.Errorf("preset needs a report and a name")
	}

	fields, err := json.Marshal(p.Values)
	if err != nil {
		return fmt.Errorf("failed to encode preset values: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO filter_presets (report, name, fields, created_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(report, name) DO UPDATE SET fields = excluded.fields`,
		p.Report, p.Name, string(fields))
	if err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	return nil
}

// Get loads one preset by report and name.
func (s *PresetStore) Get(ctx context.Context, reportName, name string) (Preset, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT report, name, fields, created_at
		FROM filter_presets
		WHERE report = ? AND name = ?`,
		reportName, name)

	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, ErrPresetNotFound
	}
	if err != nil {
		return Preset{}, fmt.Errorf("failed to load preset: %w", err)
	}

	return p, nil
}

// List returns all presets of a report, newest first.
func (s *PresetStore) List(ctx context.Context, reportName string) ([]Preset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT report, name, fields, created_at
		FROM filter_presets
		WHERE report = ?
		ORDER BY created_at DESC, name`,
		reportName)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var presets []Preset
	for rows.Next() {
		p, scanErr := scanPreset(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", scanErr)
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate presets: %w", err)
	}

	return presets, nil
}

// Delete removes one preset. Deleting a missing preset is not an error.
func (s *PresetStore) Delete(ctx context.Context, reportName, name string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM filter_presets WHERE report = ? AND name = ?`,
		reportName, name)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (Preset, error) {
	var p Preset
	var fields string

	if err := row.Scan(&p.Report, &p.Name, &fields, &p.CreatedAt); err != nil {
		return Preset{}, err
	}

	if err := json.Unmarshal([]byte(fields), &p.Values); err != nil {
		return Preset{}, fmt.Errorf("corrupt preset %q: %w", p.Name, err)
	}

	return p, nil
}
