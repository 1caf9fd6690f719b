package game

import (
	"math"
	"time"

	"github.com/wortwerk/wortspiel/internal/models"
)

// WordMatchScore is the scored outcome of a word-match session
type WordMatchScore struct {
	Score      int
	Total      int
	Perfect    bool
	Passed     bool
	DurationMs int64
}

// PassThreshold returns the minimum correct count that keeps a streak
// alive: ceil(total * 0.625).
func PassThreshold(total int) int {
	return int(math.Ceil(float64(total) * 0.625))
}

// ScoreWordMatch computes score, perfect flag and pass flag for a set of
// recorded answers. Total elapsed time is the sum of per-item response
// times.
func ScoreWordMatch(answers []models.WordMatchAnswer) WordMatchScore {
	var score int
	var duration int64
	for _, a := range answers {
		if a.Correct {
			score++
		}
		duration += a.TimeMs
	}
	total := len(answers)
	return WordMatchScore{
		Score:      score,
		Total:      total,
		Perfect:    total > 0 && score == total,
		Passed:     total > 0 && score >= PassThreshold(total),
		DurationMs: duration,
	}
}

// ScoreHangman computes the score and perfect flag for a finished hangman
// round.
//
// Win: base 100, plus 15 per unused attempt, plus a time bonus
// (<30s +50, <60s +30, <90s +15), plus an efficiency bonus (correct
// guesses within the word's unique letter count +50, within two extra
// +25). Loss: floor(50 * correct / unique). Perfect means a win without a
// single incorrect guess.
func ScoreHangman(o models.HangmanOutcome) (score int, perfect bool) {
	if o.Won {
		score = 100 + 15*(models.HangmanMaxAttempts-o.IncorrectGuesses)
		score += timeBonus(time.Duration(o.DurationMs) * time.Millisecond)
		score += efficiencyBonus(o.CorrectGuesses, o.UniqueLetters)
		return score, o.IncorrectGuesses == 0
	}
	if o.UniqueLetters > 0 {
		score = 50 * o.CorrectGuesses / o.UniqueLetters
	}
	return score, false
}

func timeBonus(d time.Duration) int {
	switch {
	case d < 30*time.Second:
		return 50
	case d < 60*time.Second:
		return 30
	case d < 90*time.Second:
		return 15
	default:
		return 0
	}
}

func efficiencyBonus(correct, unique int) int {
	switch {
	case correct <= unique:
		return 50
	case correct <= unique+2:
		return 25
	default:
		return 0
	}
}
