package game

import (
	"strings"
	"testing"

	"github.com/wortwerk/wortspiel/internal/models"
)

func wmAnswers(correct, total int) []models.WordMatchAnswer {
	answers := make([]models.WordMatchAnswer, total)
	for i := range answers {
		answers[i] = models.WordMatchAnswer{Correct: i < correct, TimeMs: 1000}
	}
	return answers
}

func TestScoreWordMatchPassing(t *testing.T) {
	sc := ScoreWordMatch(wmAnswers(5, 8))
	if sc.Score != 5 {
		t.Errorf("score = %d, want 5", sc.Score)
	}
	if sc.Perfect {
		t.Error("5/8 must not be perfect")
	}
	if !sc.Passed {
		t.Error("5/8 must pass (threshold is ceil(8*0.625)=5)")
	}
	if sc.DurationMs != 8000 {
		t.Errorf("duration = %d, want sum of item times 8000", sc.DurationMs)
	}
}

func TestScoreWordMatchFailing(t *testing.T) {
	sc := ScoreWordMatch(wmAnswers(4, 8))
	if sc.Passed {
		t.Error("4/8 must not pass")
	}
}

func TestScoreWordMatchPerfect(t *testing.T) {
	sc := ScoreWordMatch(wmAnswers(8, 8))
	if !sc.Perfect || !sc.Passed || sc.Score != 8 {
		t.Errorf("unexpected perfect score: %+v", sc)
	}
}

func TestPassThreshold(t *testing.T) {
	if got := PassThreshold(8); got != 5 {
		t.Errorf("PassThreshold(8) = %d, want 5", got)
	}
}

func TestScoreHangmanPerfectWin(t *testing.T) {
	// "apfel": 5 letters, 5 unique, won with 0 incorrect in 20s
	score, perfect := ScoreHangman(models.HangmanOutcome{
		Won:              true,
		CorrectGuesses:   5,
		IncorrectGuesses: 0,
		UniqueLetters:    5,
		DurationMs:       20_000,
	})
	if score != 290 {
		t.Errorf("score = %d, want 290 (100 + 15*6 + 50 + 50)", score)
	}
	if !perfect {
		t.Error("win with zero incorrect guesses must be perfect")
	}
}

func TestScoreHangmanWinWithMistakes(t *testing.T) {
	score, perfect := ScoreHangman(models.HangmanOutcome{
		Won:              true,
		CorrectGuesses:   8,
		IncorrectGuesses: 2,
		UniqueLetters:    5,
		DurationMs:       75_000,
	})
	// 100 + 15*4 + 15 (under 90s) + 0 (8 > 5+2)
	if score != 175 {
		t.Errorf("score = %d, want 175", score)
	}
	if perfect {
		t.Error("win with incorrect guesses must not be perfect")
	}
}

func TestScoreHangmanLoss(t *testing.T) {
	score, perfect := ScoreHangman(models.HangmanOutcome{
		Won:            false,
		CorrectGuesses: 3,
		UniqueLetters:  5,
	})
	if score != 30 {
		t.Errorf("loss score = %d, want floor(50*3/5)=30", score)
	}
	if perfect {
		t.Error("loss can never be perfect")
	}
}

func TestScoreHangmanLossZeroUnique(t *testing.T) {
	score, _ := ScoreHangman(models.HangmanOutcome{Won: false})
	if score != 0 {
		t.Errorf("degenerate loss score = %d, want 0", score)
	}
}

func TestNextStreak(t *testing.T) {
	cases := []struct {
		streak, max         int
		passed              bool
		wantStreak, wantMax int
	}{
		{2, 4, true, 3, 4},
		{5, 5, false, 0, 5},
		{5, 5, true, 6, 6},
		{0, 0, true, 1, 1},
		{0, 7, false, 0, 7},
	}
	for _, c := range cases {
		gotStreak, gotMax := NextStreak(c.streak, c.max, c.passed)
		if gotStreak != c.wantStreak || gotMax != c.wantMax {
			t.Errorf("NextStreak(%d, %d, %v) = (%d, %d), want (%d, %d)",
				c.streak, c.max, c.passed, gotStreak, gotMax, c.wantStreak, c.wantMax)
		}
	}
}

func TestWordMatchShareText(t *testing.T) {
	sc := ScoreWordMatch(wmAnswers(8, 8))
	text := WordMatchShareText("2024-03-07", sc, 3)
	if !strings.Contains(text, "8/8") {
		t.Errorf("share text missing score: %q", text)
	}
	if !strings.Contains(text, "Serie: 3") {
		t.Errorf("share text missing streak: %q", text)
	}
}

func TestWordMatchShareGrid(t *testing.T) {
	grid := WordMatchShareGrid(wmAnswers(2, 3))
	if grid != "🟩🟩🟥" {
		t.Errorf("unexpected grid: %q", grid)
	}
}

func TestHangmanShareText(t *testing.T) {
	o := models.HangmanOutcome{Won: true, IncorrectGuesses: 1}
	text := HangmanShareText("2024-03-07", o, 200, 0)
	if !strings.Contains(text, "gewonnen") {
		t.Errorf("share text should mention the win: %q", text)
	}
	if strings.Contains(text, "Serie") {
		t.Errorf("zero streak should not render a streak line: %q", text)
	}
}
