// Package history persists blended position snapshots to SQLite so past
// train movements can be replayed or analyzed offline.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a SQLite database holding position snapshots. Writes are
// serialized; SQLite supports a single writer at a time.
type Store struct {
	conn    *sql.DB
	writeMu sync.Mutex
}

// Open opens the database at path in WAL mode and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path + "?_journal=WAL&_fk=1&_busy_timeout=5000"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			log.Printf("history: failed to set %s: %v", pragma, err)
		}
	}

	s := &Store{conn: conn}
	if err := s.ensureSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("creating history schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}
