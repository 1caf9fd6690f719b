package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/wortwerk/wortspiel/internal/models"
	"github.com/wortwerk/wortspiel/internal/store"
)

func TestPruneRemovesOnlyExpiredSessions(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	_ = st.PutWordMatchPuzzle(ctx, &models.WordMatchPuzzle{ID: "2024-01-01:de"})
	_ = st.PutWordMatchPuzzle(ctx, &models.WordMatchPuzzle{ID: "2024-03-06:de"})
	_ = st.PutHangmanSession(ctx, &models.HangmanSession{ID: "2024-01-01:de:hangman:easy"})

	c := NewCleaner(st, time.Hour, 14*24*time.Hour)
	c.now = func() time.Time { return time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC) }

	c.prune(ctx)

	if p, _ := st.GetWordMatchPuzzle(ctx, "2024-01-01:de"); p != nil {
		t.Error("old puzzle should have been pruned")
	}
	if p, _ := st.GetWordMatchPuzzle(ctx, "2024-03-06:de"); p == nil {
		t.Error("recent puzzle should have been kept")
	}
	if s, _ := st.GetHangmanSession(ctx, "2024-01-01:de:hangman:easy"); s != nil {
		t.Error("old hangman session should have been pruned")
	}
}

func TestSeedDate(t *testing.T) {
	if _, ok := seedDate("not-a-date"); ok {
		t.Error("garbage seed should not parse")
	}
	date, ok := seedDate("2024-03-07:de:hangman:easy")
	if !ok || date.Day() != 7 {
		t.Errorf("seedDate = (%v, %v)", date, ok)
	}
}
