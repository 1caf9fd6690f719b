package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wortwerk/wortspiel/internal/models"
)

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int32
	MaxIdleConns int32
	MaxLifetime  time.Duration
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = cfg.MaxOpenConns
	} else {
		poolConfig.MaxConns = 25
	}

	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = cfg.MaxIdleConns
	} else {
		poolConfig.MinConns = 5
	}

	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxLifetime
	} else {
		poolConfig.MaxConnLifetime = 30 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// InsertResult appends a scored result to the archive
func (r *PostgresRepository) InsertResult(ctx context.Context, result *models.GameResult) error {
	query := `
		INSERT INTO results (user_id, seed, mode, score, total, perfect, passed, duration_ms, streak, max_streak, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		result.UserID,
		result.Seed,
		string(result.Mode),
		result.Score,
		result.Total,
		result.Perfect,
		result.Passed,
		result.DurationMs,
		result.Streak,
		result.MaxStreak,
		result.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// ListUserResults returns a user's archived results, newest first
func (r *PostgresRepository) ListUserResults(ctx context.Context, userID string, limit int) ([]*models.GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT user_id, seed, mode, score, total, perfect, passed, duration_ms, streak, max_streak, created_at
		FROM results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []*models.GameResult
	for rows.Next() {
		var result models.GameResult
		var mode string
		if err := rows.Scan(
			&result.UserID,
			&result.Seed,
			&mode,
			&result.Score,
			&result.Total,
			&result.Perfect,
			&result.Passed,
			&result.DurationMs,
			&result.Streak,
			&result.MaxStreak,
			&result.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		result.Mode = models.GameMode(mode)
		results = append(results, &result)
	}

	return results, rows.Err()
}

// Leaderboard returns the best score per user for one day, ranked
func (r *PostgresRepository) Leaderboard(ctx context.Context, date string, limit int) ([]*models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	// the seed starts with the date, so a prefix match selects the day
	query := `
		SELECT user_id, mode, MAX(score) AS best
		FROM results
		WHERE seed LIKE $1 || ':%'
		GROUP BY user_id, mode
		ORDER BY best DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, date, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e models.LeaderboardEntry
		var mode string
		if err := rows.Scan(&e.UserID, &mode, &e.Score); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		e.Mode = models.GameMode(mode)
		e.Rank = rank
		rank++
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
