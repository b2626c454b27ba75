package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/cognicore/tokenkit/pkg/tokenkit/internalerr"
	"github.com/cognicore/tokenkit/pkg/tokenkit/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// Option configures OpenSQLite.
type Option func(*sqliteStore)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *sqliteStore) {
		if l != nil {
			s.log = l
		}
	}
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func OpenSQLite(ctx context.Context, path string, opts ...Option) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY under concurrent puts.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	s := &sqliteStore{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug("sqlite store opened", zap.String("path", path))
	return s, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS token_counts (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	analyzer TEXT NOT NULL,
	tokens INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_token_counts_analyzer ON token_counts(analyzer, id);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutCount inserts or replaces a count record
func (s *sqliteStore) PutCount(ctx context.Context, r store.Record) (store.Record, error) {
	if r.Analyzer == "" {
		return store.Record{}, fmt.Errorf("put count: missing analyzer: %w", internalerr.ErrInvalidInput)
	}
	r = store.Prepare(r)

	const stmt = `
INSERT INTO token_counts (id, source, analyzer, tokens, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source=excluded.source,
	analyzer=excluded.analyzer,
	tokens=excluded.tokens,
	created_at=excluded.created_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		r.ID,
		r.Source,
		r.Analyzer,
		r.Tokens,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return store.Record{}, fmt.Errorf("put count %s: %w", r.ID, err)
	}
	return r, nil
}

// GetCount loads a single record by ID
func (s *sqliteStore) GetCount(ctx context.Context, id string) (store.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, analyzer, tokens, created_at FROM token_counts WHERE id = ?`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Record{}, fmt.Errorf("count %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Record{}, err
	}
	return r, nil
}

// ListCounts returns records newest first
func (s *sqliteStore) ListCounts(ctx context.Context, analyzer string, limit int) ([]store.Record, error) {
	query := `SELECT id, source, analyzer, tokens, created_at FROM token_counts`
	var args []any
	if analyzer != "" {
		query += ` WHERE analyzer = ?`
		args = append(args, analyzer)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TotalTokens sums token counts
func (s *sqliteStore) TotalTokens(ctx context.Context, analyzer string) (int64, error) {
	query := `SELECT COALESCE(SUM(tokens), 0) FROM token_counts`
	var args []any
	if analyzer != "" {
		query += ` WHERE analyzer = ?`
		args = append(args, analyzer)
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (store.Record, error) {
	var (
		r       store.Record
		created string
	)
	if err := sc.Scan(&r.ID, &r.Source, &r.Analyzer, &r.Tokens, &created); err != nil {
		return store.Record{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return store.Record{}, fmt.Errorf("parse created_at for %s: %w", r.ID, err)
	}
	r.CreatedAt = t
	return r, nil
}
