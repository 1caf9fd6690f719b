package models

// UserProgress tracks a user's streak across sessions.
// Created on first access with zero values; mutated after every submitted
// result. The read-modify-write around it is not guarded against concurrent
// submissions for the same user.
type UserProgress struct {
	UserID     string `json:"user_id"`
	Streak     int    `json:"streak"`
	MaxStreak  int    `json:"max_streak"`
	LastPlayed string `json:"last_played,omitempty"` // seed of the last scored session
}
