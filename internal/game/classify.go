package game

import (
	"unicode/utf8"

	"github.com/wortwerk/wortspiel/internal/models"
)

// Classify maps a word to its difficulty tier by length. Total over all
// strings: <=5 easy, 6-9 medium, >=10 hard. Length is measured in code
// points, so umlauts and ß count as one.
func Classify(word string) models.DifficultyTier {
	n := utf8.RuneCountInString(word)
	switch {
	case n <= 5:
		return models.TierEasy
	case n <= 9:
		return models.TierMedium
	default:
		return models.TierHard
	}
}
