package models

import "strings"

// DifficultyTier buckets words by length
type DifficultyTier string

const (
	TierEasy   DifficultyTier = "easy"   // <= 5 letters
	TierMedium DifficultyTier = "medium" // 6-9 letters
	TierHard   DifficultyTier = "hard"   // >= 10 letters
)

// AllTiers returns the tiers in fixed order
func AllTiers() []DifficultyTier {
	return []DifficultyTier{TierEasy, TierMedium, TierHard}
}

// IsValid reports whether the tier is one of easy/medium/hard
func (t DifficultyTier) IsValid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// WordEntry is one word in the pool together with its hint.
// Identity is the normalized (lower-cased, trimmed) word text; a word may
// appear in only one tier.
type WordEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// NormalizeWord lower-cases and trims a word for identity comparison
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// BankItem is one source item of the word-match bank: a German word and its
// translation. Distractor choices are drawn from other items' translations.
type BankItem struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

// AddWordRequest is the body of POST /api/words/add
type AddWordRequest struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
	Tier string `json:"tier,omitempty"`
}

// EnrichRequest is the body of POST /api/words/enrich
type EnrichRequest struct {
	Count int `json:"count"`
}
