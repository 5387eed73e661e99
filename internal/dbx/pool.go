package dbx

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open creates the connection pool. The caller owns the handle and must
// Close it on shutdown; using the gateway before Open is a caller error.
// minConns/maxConns bound the pool: maxConns caps concurrent checkouts,
// minConns connections are kept idle for reuse.
func Open(dsn string, minConns, maxConns int) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(minConns)

	return db, nil
}

// Ping verifies the pool can reach the server. Intended for startup checks.
func Ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}
	return nil
}

// Close releases the pool and all of its connections.
func Close(db *sql.DB) error {
	return db.Close()
}
