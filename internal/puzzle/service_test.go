package puzzle

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortwerk/wortspiel/internal/game"
	"github.com/wortwerk/wortspiel/internal/models"
	"github.com/wortwerk/wortspiel/internal/store"
)

// fixedPool serves a static word list per tier
type fixedPool struct {
	words map[models.DifficultyTier][]models.WordEntry
}

func (f *fixedPool) Words(ctx context.Context, tier models.DifficultyTier) []models.WordEntry {
	return f.words[tier]
}

func testBank(n int) []models.BankItem {
	bank := make([]models.BankItem, n)
	for i := range bank {
		bank[i] = models.BankItem{
			Word:        fmt.Sprintf("wort%02d", i),
			Translation: fmt.Sprintf("translation%02d", i),
		}
	}
	return bank
}

func newTestService(t *testing.T, st store.Store) *Service {
	t.Helper()
	pool := &fixedPool{words: map[models.DifficultyTier][]models.WordEntry{
		models.TierEasy:   {{Word: "haus"}, {Word: "hund"}, {Word: "baum"}},
		models.TierMedium: {{Word: "fenster", Hint: "look through it"}},
	}}
	svc := NewService(st, pool, nil, "de")
	svc.now = func() time.Time { return time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, st.PutBank(context.Background(), "de", testBank(16)))
	return svc
}

func TestBuildWordMatchDeterministic(t *testing.T) {
	bank := testBank(16)
	now := time.Now()

	a, err := BuildWordMatch("2024-03-07:de", "de", bank, now)
	require.NoError(t, err)
	b, err := BuildWordMatch("2024-03-07:de", "de", bank, now)
	require.NoError(t, err)

	require.Len(t, a.Items, models.WordMatchItems)
	assert.Equal(t, a.Items, b.Items, "same seed must produce identical items")

	c, err := BuildWordMatch("2024-03-08:de", "de", bank, now)
	require.NoError(t, err)
	assert.NotEqual(t, a.Items, c.Items, "different seeds should differ")
}

func TestBuildWordMatchItemShape(t *testing.T) {
	p, err := BuildWordMatch("2024-03-07:de", "de", testBank(16), time.Now())
	require.NoError(t, err)

	for _, item := range p.Items {
		require.Len(t, item.Choices, 3)
		correct := 0
		for _, c := range item.Choices {
			if c.Key == item.Answer {
				correct++
			}
		}
		assert.Equal(t, 1, correct, "exactly one choice carries the answer key")

		// the three choice texts are distinct
		texts := map[string]bool{}
		for _, c := range item.Choices {
			texts[c.Text] = true
		}
		assert.Len(t, texts, 3, "choices should be distinct for a rich bank")
	}
}

func TestBuildWordMatchSmallBank(t *testing.T) {
	_, err := BuildWordMatch("2024-03-07:de", "de", testBank(5), time.Now())
	assert.ErrorIs(t, err, game.ErrNoContent)
}

func TestDailyWordMatchCachedImmutable(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(t, st)
	ctx := context.Background()

	first, err := svc.DailyWordMatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07:de", first.ID)

	// grow the bank; the cached puzzle must not change
	require.NoError(t, st.PutBank(ctx, "de", testBank(40)))

	second, err := svc.DailyWordMatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Items, second.Items)
}

func TestWordMatchBySeedUnknown(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	_, err := svc.WordMatchBySeed(context.Background(), "2020-01-01:de")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDailyHangmanIdempotent(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()

	first, err := svc.DailyHangman(ctx, models.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, models.HangmanCreated, first.Status)
	assert.Equal(t, models.HangmanMaxAttempts, first.MaxAttempts)

	second, err := svc.DailyHangman(ctx, models.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Word, second.Word)
}

func TestDailyHangmanEmptyTier(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	_, err := svc.DailyHangman(context.Background(), models.TierHard)
	assert.ErrorIs(t, err, game.ErrNoContent)
}

func TestPracticeHangmanFresh(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()

	a, err := svc.PracticeHangman(ctx, models.TierEasy)
	require.NoError(t, err)
	b, err := svc.PracticeHangman(ctx, models.TierEasy)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID, "practice sessions must have unique seeds")
	assert.Equal(t, models.HangmanModePractice, a.Mode)

	// practice sessions are not cached
	_, err = svc.HangmanBySeed(ctx, a.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGuessFlowToWin(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()

	sess, err := svc.DailyHangman(ctx, models.TierMedium) // "fenster"
	require.NoError(t, err)
	require.Equal(t, "fenster", sess.Word)

	for _, letter := range []string{"f", "e", "n", "s", "t"} {
		sess, _, err = svc.Guess(ctx, sess.ID, letter)
		require.NoError(t, err)
	}
	require.Equal(t, models.HangmanGuessing, sess.Status)

	sess, record, err := svc.Guess(ctx, sess.ID, "r")
	require.NoError(t, err)
	assert.True(t, record.Correct)
	assert.Equal(t, models.HangmanWon, sess.Status)
	require.NotNil(t, sess.FinishedAt)

	_, _, err = svc.Guess(ctx, sess.ID, "x")
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestGuessFlowToLoss(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()

	sess, err := svc.DailyHangman(ctx, models.TierMedium)
	require.NoError(t, err)

	var lastErr error
	for _, letter := range []string{"q", "x", "y", "z", "j", "w"} {
		sess, _, lastErr = svc.Guess(ctx, sess.ID, letter)
		require.NoError(t, lastErr)
	}
	assert.Equal(t, models.HangmanLost, sess.Status)
	assert.Equal(t, models.HangmanMaxAttempts, sess.IncorrectCount())
}

func TestGuessValidation(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()

	sess, err := svc.DailyHangman(ctx, models.TierEasy)
	require.NoError(t, err)

	_, _, err = svc.Guess(ctx, sess.ID, "ab")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, _, err = svc.Guess(ctx, sess.ID, sess.Word[:1])
	require.NoError(t, err)
	_, _, err = svc.Guess(ctx, sess.ID, sess.Word[:1])
	assert.ErrorIs(t, err, ErrAlreadyGuessed)
}

func TestOutcome(t *testing.T) {
	started := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	finished := started.Add(20 * time.Second)
	sess := &models.HangmanSession{
		Word:       "apfel",
		Status:     models.HangmanWon,
		StartedAt:  started,
		FinishedAt: &finished,
		Guesses: []models.GuessRecord{
			{Letter: "a", Correct: true},
			{Letter: "p", Correct: true},
			{Letter: "f", Correct: true},
			{Letter: "e", Correct: true},
			{Letter: "l", Correct: true},
		},
	}

	o := Outcome(sess)
	assert.True(t, o.Won)
	assert.Equal(t, 5, o.CorrectGuesses)
	assert.Zero(t, o.IncorrectGuesses)
	assert.Equal(t, 5, o.UniqueLetters)
	assert.Equal(t, int64(20_000), o.DurationMs)

	score, perfect := game.ScoreHangman(o)
	assert.Equal(t, 290, score)
	assert.True(t, perfect)
}
