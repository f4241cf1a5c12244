// Package postgres provides a PostgreSQL-backed cloud document store used
// as the remote side of sync reconciliation.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool

	dsn string
}

// NewDB returns a DB for the given connection string. It is not connected
// until Open is called.
func NewDB(dsn string) *DB {
	return &DB{dsn: dsn}
}

// Open establishes the connection pool and ensures the schema exists.
func (db *DB) Open(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(db.dsn)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	db.Pool = pool
	return db.createSchema(ctx)
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Ping checks if the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// createSchema creates the documents table. One row per user document,
// keyed by (uid, collection, doc_id), with the full record as JSONB.
func (db *DB) createSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			uid TEXT NOT NULL,
			collection TEXT NOT NULL,
			doc_id TEXT NOT NULL,
			doc JSONB NOT NULL,
			synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (uid, collection, doc_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}
