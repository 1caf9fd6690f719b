package game

import (
	"fmt"
	"strings"

	"github.com/wortwerk/wortspiel/internal/models"
)

// WordMatchShareText renders the shareable summary of a word-match result:
// a header line, an emoji grid line and the current streak.
func WordMatchShareText(date string, sc WordMatchScore, streak int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Wortspiel %s — %d/%d", date, sc.Score, sc.Total)
	if sc.Perfect {
		b.WriteString(" ⭐")
	}
	b.WriteString("\n")
	return b.String() + shareStreakLine(streak)
}

// WordMatchShareGrid renders the per-item emoji line in answer order
func WordMatchShareGrid(answers []models.WordMatchAnswer) string {
	var b strings.Builder
	for _, a := range answers {
		if a.Correct {
			b.WriteString("🟩")
		} else {
			b.WriteString("🟥")
		}
	}
	return b.String()
}

// HangmanShareText renders the shareable summary of a hangman result
func HangmanShareText(date string, o models.HangmanOutcome, score int, streak int) string {
	var b strings.Builder
	if o.Won {
		fmt.Fprintf(&b, "Galgenmännchen %s — gewonnen mit %d Punkten", date, score)
		if o.IncorrectGuesses == 0 {
			b.WriteString(" ⭐")
		}
	} else {
		fmt.Fprintf(&b, "Galgenmännchen %s — verloren (%d Punkte)", date, score)
	}
	fmt.Fprintf(&b, "\n%d Fehlversuche von %d\n", o.IncorrectGuesses, models.HangmanMaxAttempts)
	return b.String() + shareStreakLine(streak)
}

func shareStreakLine(streak int) string {
	if streak <= 0 {
		return ""
	}
	return fmt.Sprintf("🔥 Serie: %d", streak)
}
