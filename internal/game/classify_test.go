package game

import (
	"testing"

	"github.com/wortwerk/wortspiel/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		word string
		want models.DifficultyTier
	}{
		{"haus", models.TierEasy},
		{"apfel", models.TierEasy},
		{"straße", models.TierMedium}, // 6 code points, ß counts once
		{"mädchen", models.TierMedium},
		{"bibliothek", models.TierHard},
		{"schmetterling", models.TierHard},
		{"a", models.TierEasy},
		{"", models.TierEasy},
	}

	for _, c := range cases {
		if got := Classify(c.word); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.word, got, c.want)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	if Classify("abcde") != models.TierEasy {
		t.Error("5 letters should be easy")
	}
	if Classify("abcdef") != models.TierMedium {
		t.Error("6 letters should be medium")
	}
	if Classify("abcdefghi") != models.TierMedium {
		t.Error("9 letters should be medium")
	}
	if Classify("abcdefghij") != models.TierHard {
		t.Error("10 letters should be hard")
	}
}
