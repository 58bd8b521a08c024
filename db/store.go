// Package db manages the seeded SQLite database.
//
// Design decisions:
//   - Uses the pure-Go modernc.org/sqlite driver through database/sql,
//     so the binary needs no cgo and tests need no external sqlite3.
//   - The store is created and seeded on open if the file is new; seed
//     rows are never mutated afterwards. The application only issues
//     SELECT statements against it.
//   - All queries are executed through the Store, keeping the rest of
//     the application unaware of connection details.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register the "sqlite" driver
)

// Store wraps the SQLite handle.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating and seeding if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// One turn runs at a time; a single connection keeps the file lock simple.
	handle.SetMaxOpenConns(1)

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	s := &Store{db: handle, path: path}
	if err := s.setup(ctx); err != nil {
		handle.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close shuts down the database handle.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}
