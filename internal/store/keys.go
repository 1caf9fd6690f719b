package store

import (
	"fmt"

	"github.com/wortwerk/wortspiel/internal/models"
)

// Persisted key layout. Every key is logically owned by one entity (a
// user, a session, a pool tier) and written by exactly one code path.

func userStreakKey(userID string) string {
	return fmt.Sprintf("user:%s:streak", userID)
}

func userMaxStreakKey(userID string) string {
	return fmt.Sprintf("user:%s:maxStreak", userID)
}

func userLastPlayedKey(userID string) string {
	return fmt.Sprintf("user:%s:lastPlayed", userID)
}

func playedKey(userID, seed string, mode models.GameMode) string {
	if mode == models.ModeHangman {
		return fmt.Sprintf("user:%s:hangman:%s", userID, seed)
	}
	return fmt.Sprintf("user:%s:played:%s", userID, seed)
}

func poolKey(tier models.DifficultyTier) string {
	return fmt.Sprintf("german_words:%s", tier)
}

// Session blob key prefixes, exported for scan-based maintenance
const (
	PuzzleKeyPrefix  = "wm:puzzle:"
	HangmanKeyPrefix = "hangman:game:"
)

// PuzzleKey returns the cache key of a word-match session blob
func PuzzleKey(seed string) string {
	return PuzzleKeyPrefix + seed
}

// HangmanKey returns the cache key of a hangman session blob
func HangmanKey(seed string) string {
	return HangmanKeyPrefix + seed
}

func bankKey(lang string) string {
	return fmt.Sprintf("wm:bank:%s", lang)
}
