// Package store wraps the key-value store that holds all mutable game
// state: word pools, cached sessions, user progress and played markers.
package store

import (
	"context"

	"github.com/wortwerk/wortspiel/internal/models"
)

// Store defines the key-value persistence used by the game.
// Reads return (nil, nil) when the key is absent; callers decide whether
// that means "create" or "not found".
type Store interface {
	// User progress
	GetProgress(ctx context.Context, userID string) (models.UserProgress, error)
	PutProgress(ctx context.Context, p models.UserProgress) error

	// Played markers. MarkPlayed writes the result blob only if the
	// (user, seed) pair has not been scored before and reports whether
	// the write happened.
	MarkPlayed(ctx context.Context, result models.GameResult) (bool, error)
	GetPlayedResult(ctx context.Context, userID, seed string, mode models.GameMode) (*models.GameResult, error)

	// Word pool, one hash of word -> hint per tier
	GetPool(ctx context.Context, tier models.DifficultyTier) (map[string]string, error)
	PutPoolWord(ctx context.Context, tier models.DifficultyTier, word, hint string) error
	PutPoolWords(ctx context.Context, tier models.DifficultyTier, words map[string]string) error

	// Cached sessions
	GetWordMatchPuzzle(ctx context.Context, seed string) (*models.WordMatchPuzzle, error)
	PutWordMatchPuzzle(ctx context.Context, p *models.WordMatchPuzzle) error
	GetHangmanSession(ctx context.Context, seed string) (*models.HangmanSession, error)
	PutHangmanSession(ctx context.Context, s *models.HangmanSession) error

	// Word-match source bank
	GetBank(ctx context.Context, lang string) ([]models.BankItem, error)
	PutBank(ctx context.Context, lang string, items []models.BankItem) error

	// Maintenance
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
	DeleteKeys(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
	Close() error
}
