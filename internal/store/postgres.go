package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"vanityseek/internal/worker"
)

// PostgresStore writes matches to a Postgres table with a prepared
// upsert, keyed by address.
type PostgresStore struct {
	db         *sql.DB
	insertStmt *sql.Stmt
}

// OpenPostgres connects to the database and prepares statements.
func OpenPostgres(conn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	stmt, err := db.Prepare(`
		INSERT INTO matches (address, public_key, private_key, pattern, attempts, found_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (address)
		DO UPDATE SET pattern = EXCLUDED.pattern, attempts = EXCLUDED.attempts, found_at = EXCLUDED.found_at`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing insert statement: %w", err)
	}

	return &PostgresStore{db: db, insertStmt: stmt}, nil
}

// SaveBatch inserts matches inside a single transaction.
func (s *PostgresStore) SaveBatch(matches []worker.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	stmt := tx.Stmt(s.insertStmt)
	for _, m := range matches {
		if _, err := stmt.Exec(m.Address, m.PublicKey, m.PrivateKey, m.Pattern, m.Attempts, m.FoundAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting match %s: %w", m.Address, err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Close releases the prepared statement and the connection pool.
func (s *PostgresStore) Close() error {
	if s.insertStmt != nil {
		s.insertStmt.Close()
	}
	return s.db.Close()
}
