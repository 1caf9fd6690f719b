package storage

import (
	"context"

	"github.com/wortwerk/wortspiel/internal/models"
)

// Repository defines the durable results archive. The key-value store
// holds the live game state; every scored result is additionally appended
// here so history and leaderboards stay queryable.
type Repository interface {
	InsertResult(ctx context.Context, result *models.GameResult) error
	ListUserResults(ctx context.Context, userID string, limit int) ([]*models.GameResult, error)
	Leaderboard(ctx context.Context, date string, limit int) ([]*models.LeaderboardEntry, error)

	Ping(ctx context.Context) error
	Close() error
}
