// Package store keeps a history of scans in a SQLite database.
package store

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/f3rmion/shiksha/internal/codec"
	"github.com/f3rmion/shiksha/internal/scansion"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned when no scan has the requested id.
var ErrNotFound = errors.New("scan not found")

// Scan is one stored scansion.
type Scan struct {
	ID        string
	CreatedAt time.Time
	Record    scansion.Record
}

// Store is a scan history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a record under a fresh id.
func (s *Store) Save(ctx context.Context, rec scansion.Record) (*Scan, error) {
	var buf bytes.Buffer
	if err := codec.Write(&buf, rec); err != nil {
		return nil, fmt.Errorf("encoding scan: %w", err)
	}

	scan := &Scan{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Record:    rec,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scans (id, text, policy, pattern, total, record, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		scan.ID, rec.Text, rec.Policy, rec.Pattern, rec.Total, buf.String(), scan.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("saving scan: %w", err)
	}
	return scan, nil
}

// Get returns the scan with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Scan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, record, created_at FROM scans WHERE id = ?`, id)
	scan, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting scan: %w", err)
	}
	return scan, nil
}

// List returns the most recent scans, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]*Scan, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, record, created_at FROM scans ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing scans: %w", err)
	}
	return collect(rows)
}

// FindPattern returns scans whose whole-line pattern matches exactly.
func (s *Store) FindPattern(ctx context.Context, pattern string) ([]*Scan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, record, created_at FROM scans WHERE pattern = ? ORDER BY created_at DESC, rowid DESC`, pattern)
	if err != nil {
		return nil, fmt.Errorf("finding scans: %w", err)
	}
	return collect(rows)
}

// Delete removes the scan with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scan: %w", err)
	}
	return deleted(res, id)
}

// deleted checks that a DELETE removed a row.
func deleted(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting scan %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*Scan, error) {
	var (
		scan    Scan
		record  string
		created int64
	)
	if err := row.Scan(&scan.ID, &record, &created); err != nil {
		return nil, err
	}
	if err := codec.Read(bytes.NewReader([]byte(record)), &scan.Record); err != nil {
		return nil, fmt.Errorf("scan %s: %w", scan.ID, err)
	}
	scan.CreatedAt = time.Unix(0, created).UTC()
	return &scan, nil
}

func collect(rows *sql.Rows) ([]*Scan, error) {
	defer rows.Close()

	var out []*Scan
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading scans: %w", err)
	}
	return out, nil
}
