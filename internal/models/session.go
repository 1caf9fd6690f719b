package models

import (
	"strings"
	"time"
	"unicode"
)

// GameMode distinguishes the two game variants
type GameMode string

const (
	ModeWordMatch GameMode = "word-match"
	ModeHangman   GameMode = "hangman"
)

// WordMatchItems is the fixed number of items in a word-match puzzle
const WordMatchItems = 8

// HangmanMaxAttempts is the fixed number of allowed incorrect guesses
const HangmanMaxAttempts = 6

// WordMatchChoice is one labeled answer option
type WordMatchChoice struct {
	Key  string `json:"key"` // "A", "B" or "C"
	Text string `json:"text"`
}

// WordMatchItem is one prompt with three choices, exactly one correct
type WordMatchItem struct {
	Prompt  string            `json:"prompt"`
	Choices []WordMatchChoice `json:"choices"`
	Answer  string            `json:"answer"` // key of the correct choice
}

// WordMatchPuzzle is one playable word-match session. Deterministic given
// its seed and immutable once materialized: repeated requests for the same
// seed return the cached puzzle even if the backing bank has grown.
type WordMatchPuzzle struct {
	ID        string          `json:"id"` // seed string
	Language  string          `json:"language"`
	Date      string          `json:"date"`
	Items     []WordMatchItem `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// HangmanStatus represents the current state of a hangman session
type HangmanStatus string

const (
	HangmanCreated  HangmanStatus = "created"
	HangmanGuessing HangmanStatus = "guessing"
	HangmanWon      HangmanStatus = "won"
	HangmanLost     HangmanStatus = "lost"
)

// HangmanModeDaily / HangmanModePractice select session lifecycle: daily
// sessions are cached by seed, practice sessions are always fresh.
const (
	HangmanModeDaily    = "daily"
	HangmanModePractice = "practice"
)

// GuessRecord is one letter guess; append-only, never mutated
type GuessRecord struct {
	Letter    string    `json:"letter"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// HangmanSession is one hangman round
type HangmanSession struct {
	ID          string         `json:"id"` // seed string
	Mode        string         `json:"mode"`
	Language    string         `json:"language"`
	Date        string         `json:"date"`
	Word        string         `json:"word"`
	Hint        string         `json:"hint,omitempty"`
	Difficulty  DifficultyTier `json:"difficulty"`
	MaxAttempts int            `json:"max_attempts"`
	Status      HangmanStatus  `json:"status"`
	Guesses     []GuessRecord  `json:"guesses,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  *time.Time     `json:"finished_at,omitempty"`
}

// IsTerminal returns true if the session has ended
func (s *HangmanSession) IsTerminal() bool {
	return s.Status == HangmanWon || s.Status == HangmanLost
}

// IncorrectCount returns the number of incorrect guesses so far
func (s *HangmanSession) IncorrectCount() int {
	n := 0
	for _, g := range s.Guesses {
		if !g.Correct {
			n++
		}
	}
	return n
}

// GuessedLetters returns the set of lower-cased letters guessed so far
func (s *HangmanSession) GuessedLetters() map[string]bool {
	out := make(map[string]bool, len(s.Guesses))
	for _, g := range s.Guesses {
		out[strings.ToLower(g.Letter)] = true
	}
	return out
}

// HasGuessed reports whether the letter was already guessed
func (s *HangmanSession) HasGuessed(letter string) bool {
	return s.GuessedLetters()[strings.ToLower(letter)]
}

// MaskedWord renders the target word with unguessed letters replaced by "_"
func (s *HangmanSession) MaskedWord() string {
	guessed := s.GuessedLetters()
	var b strings.Builder
	for _, r := range s.Word {
		if !unicode.IsLetter(r) || guessed[strings.ToLower(string(r))] {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Solved reports whether every distinct letter of the word has a correct guess
func (s *HangmanSession) Solved() bool {
	guessed := s.GuessedLetters()
	for _, r := range strings.ToLower(s.Word) {
		if !unicode.IsLetter(r) {
			continue
		}
		if !guessed[string(r)] {
			return false
		}
	}
	return true
}

// UniqueLetterCount returns the number of distinct letters in the word
func (s *HangmanSession) UniqueLetterCount() int {
	return CountUniqueLetters(s.Word)
}

// CountUniqueLetters counts distinct letters of a word, case-insensitively
func CountUniqueLetters(word string) int {
	seen := make(map[rune]bool)
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			seen[r] = true
		}
	}
	return len(seen)
}
