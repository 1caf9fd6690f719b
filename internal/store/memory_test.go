package store

import (
	"context"
	"testing"

	"github.com/wortwerk/wortspiel/internal/models"
)

func TestMemoryStoreProgressRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p, err := s.GetProgress(ctx, "anna")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if p.Streak != 0 || p.MaxStreak != 0 {
		t.Errorf("fresh user should have zero counters, got %+v", p)
	}

	p.Streak, p.MaxStreak, p.LastPlayed = 3, 5, "2024-03-07:de"
	if err := s.PutProgress(ctx, p); err != nil {
		t.Fatalf("PutProgress: %v", err)
	}

	got, _ := s.GetProgress(ctx, "anna")
	if got.Streak != 3 || got.MaxStreak != 5 || got.LastPlayed != "2024-03-07:de" {
		t.Errorf("unexpected progress after write: %+v", got)
	}
}

func TestMemoryStoreMarkPlayedOnce(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	result := models.GameResult{UserID: "anna", Seed: "2024-03-07:de", Mode: models.ModeWordMatch, Score: 6}

	ok, err := s.MarkPlayed(ctx, result)
	if err != nil || !ok {
		t.Fatalf("first MarkPlayed = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = s.MarkPlayed(ctx, result)
	if err != nil || ok {
		t.Fatalf("second MarkPlayed = (%v, %v), want (false, nil)", ok, err)
	}

	stored, err := s.GetPlayedResult(ctx, "anna", "2024-03-07:de", models.ModeWordMatch)
	if err != nil || stored == nil {
		t.Fatalf("GetPlayedResult = (%v, %v)", stored, err)
	}
	if stored.Score != 6 {
		t.Errorf("stored score = %d, want 6", stored.Score)
	}
}

func TestMemoryStoreScanAndDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.PutWordMatchPuzzle(ctx, &models.WordMatchPuzzle{ID: "2024-03-07:de"})
	_ = s.PutHangmanSession(ctx, &models.HangmanSession{ID: "2024-03-07:de"})

	keys, err := s.ScanKeys(ctx, "wm:puzzle:*")
	if err != nil {
		t.Fatalf("ScanKeys: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected 1 puzzle key, got %v", keys)
	}

	if err := s.DeleteKeys(ctx, keys...); err != nil {
		t.Fatalf("DeleteKeys: %v", err)
	}
	p, _ := s.GetWordMatchPuzzle(ctx, "2024-03-07:de")
	if p != nil {
		t.Error("puzzle should be gone after delete")
	}
}
