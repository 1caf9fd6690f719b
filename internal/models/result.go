package models

import "time"

// WordMatchAnswer is one recorded answer of a word-match session
type WordMatchAnswer struct {
	Correct bool  `json:"correct"`
	TimeMs  int64 `json:"time_ms"`
}

// HangmanOutcome carries the raw numbers needed to score a hangman round.
// Practice rounds are not persisted server-side, so the client reports them;
// for stored sessions the server recomputes from the session itself.
type HangmanOutcome struct {
	Won              bool  `json:"won"`
	CorrectGuesses   int   `json:"correct_guesses"`
	IncorrectGuesses int   `json:"incorrect_guesses"`
	UniqueLetters    int   `json:"unique_letters"`
	DurationMs       int64 `json:"duration_ms"`
}

// SubmitResultRequest is the body of POST /api/submit-result
type SubmitResultRequest struct {
	Mode    GameMode          `json:"mode"`
	Seed    string            `json:"seed"`
	Answers []WordMatchAnswer `json:"answers,omitempty"` // word-match
	Hangman *HangmanOutcome   `json:"hangman,omitempty"` // hangman
}

// GameResult is a scored, submitted session. Persisted to the key-value
// store as the played marker blob and appended to the results archive.
type GameResult struct {
	UserID     string    `json:"user_id"`
	Seed       string    `json:"seed"`
	Mode       GameMode  `json:"mode"`
	Score      int       `json:"score"`
	Total      int       `json:"total,omitempty"` // word-match item count
	Perfect    bool      `json:"perfect"`
	Passed     bool      `json:"passed"`
	DurationMs int64     `json:"duration_ms"`
	Streak     int       `json:"streak"`
	MaxStreak  int       `json:"max_streak"`
	ShareText  string    `json:"share_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeaderboardEntry is one row of the daily leaderboard
type LeaderboardEntry struct {
	UserID string   `json:"user_id"`
	Mode   GameMode `json:"mode"`
	Score  int      `json:"score"`
	Rank   int      `json:"rank"`
}
