package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens the database and verifies it is reachable. Callers must treat
// an error as fatal: the service cannot serve requests without the store.
func Connect(ctx context.Context, dsn string, minConns, maxConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Requests needing a connection beyond maxConns block until one frees up.
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(minConns)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
