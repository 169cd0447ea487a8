package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool against databaseURL and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected", "min_conns", poolCfg.MinConns, "max_conns", poolCfg.MaxConns)
	return pool, nil
}

// EnsureSchema creates the analysis history table if it does not exist yet.
// The table is append-only, so additive idempotent statements are enough.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS movie_analyses (
			id UUID PRIMARY KEY,
			movie_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			total_reviews INTEGER NOT NULL,
			positive_count INTEGER NOT NULL,
			negative_count INTEGER NOT NULL,
			positive_percentage DOUBLE PRECISION NOT NULL,
			negative_percentage DOUBLE PRECISION NOT NULL,
			average_confidence DOUBLE PRECISION NOT NULL,
			overall_sentiment TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movie_analyses_created_at ON movie_analyses (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_movie_analyses_movie_id ON movie_analyses (movie_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
