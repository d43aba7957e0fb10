package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/medportal-cli/internal/ports"
	_ "modernc.org/sqlite"
)

const (
	DatabaseFileName = "mirror.db"
	databaseDirMode  = 0o700
)

// Store keeps mirror records in a single SQLite table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ ports.MirrorStore = (*Store)(nil)

func NewStore(ctx context.Context, dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, errors.New("mirror database path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), databaseDirMode); err != nil {
		return nil, fmt.Errorf("create mirror database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open mirror database: %w", err)
	}
	// One connection serializes writers and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mirror database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize mirror schema: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS mirror_records (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		saved_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("mirror key is empty")
	}
	if value == nil {
		value = []byte{}
	}

	query := `
	INSERT INTO mirror_records (key, payload, saved_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		payload = excluded.payload,
		saved_at = excluded.saved_at`

	if _, err := s.db.ExecContext(ctx, query, key, value, s.now().UnixNano()); err != nil {
		return fmt.Errorf("save mirror record %q: %w", key, err)
	}

	return nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM mirror_records WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load mirror record %q: %w", key, err)
	}

	return payload, true, nil
}

func (s *Store) Clear(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM mirror_records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear mirror record %q: %w", key, err)
	}

	return nil
}

// SavedAt reports when key was last written.
func (s *Store) SavedAt(ctx context.Context, key string) (time.Time, bool, error) {
	var savedAt int64
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM mirror_records WHERE key = ?`, key).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load mirror record %q timestamp: %w", key, err)
	}

	return time.Unix(0, savedAt), true, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
