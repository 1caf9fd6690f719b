// Package puzzle assembles playable sessions: deterministic daily
// word-match puzzles and daily/practice hangman rounds.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wortwerk/wortspiel/internal/game"
	"github.com/wortwerk/wortspiel/internal/models"
	"github.com/wortwerk/wortspiel/internal/store"
	"github.com/wortwerk/wortspiel/internal/wordlist"
)

var (
	// ErrSessionNotFound is returned for seeds with no cached session
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionFinished is returned for guesses against a terminal session
	ErrSessionFinished = errors.New("session already finished")
	// ErrAlreadyGuessed is returned when a letter was guessed before
	ErrAlreadyGuessed = errors.New("letter already guessed")
	// ErrInvalidGuess is returned for guesses that are not a single letter
	ErrInvalidGuess = errors.New("guess must be a single letter")
)

// WordSource provides tier-ordered word entries for hangman selection
type WordSource interface {
	Words(ctx context.Context, tier models.DifficultyTier) []models.WordEntry
}

// Service builds and caches game sessions
type Service struct {
	store   store.Store
	pool    WordSource
	starter *wordlist.Loader
	lang    string
	now     func() time.Time
}

// NewService creates a session service. starter may be nil; it seeds the
// word-match bank when the store has none.
func NewService(s store.Store, pool WordSource, starter *wordlist.Loader, lang string) *Service {
	return &Service{
		store:   s,
		pool:    pool,
		starter: starter,
		lang:    lang,
		now:     time.Now,
	}
}

// TodaySeed returns the word-match seed of the current UTC day
func (s *Service) TodaySeed() string {
	return game.DailySeed(s.now().UTC(), s.lang)
}

// TodayHangmanSeed returns the hangman seed of the current UTC day for a
// difficulty
func (s *Service) TodayHangmanSeed(difficulty models.DifficultyTier) string {
	return fmt.Sprintf("%s:hangman:%s", s.TodaySeed(), difficulty)
}

// DailyWordMatch returns today's puzzle, creating and caching it on first
// request. Creation is idempotent: later requests return the cached
// puzzle unmodified even if the backing bank has grown.
func (s *Service) DailyWordMatch(ctx context.Context) (*models.WordMatchPuzzle, error) {
	return s.wordMatchForSeed(ctx, s.TodaySeed())
}

// WordMatchBySeed returns the cached puzzle for a seed. Only today's seed
// is created on demand; anything else unknown is ErrSessionNotFound.
func (s *Service) WordMatchBySeed(ctx context.Context, seed string) (*models.WordMatchPuzzle, error) {
	if seed == s.TodaySeed() {
		return s.wordMatchForSeed(ctx, seed)
	}
	cached, err := s.store.GetWordMatchPuzzle(ctx, seed)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return nil, ErrSessionNotFound
	}
	return cached, nil
}

func (s *Service) wordMatchForSeed(ctx context.Context, seed string) (*models.WordMatchPuzzle, error) {
	cached, err := s.store.GetWordMatchPuzzle(ctx, seed)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	bank, err := s.bank(ctx)
	if err != nil {
		return nil, err
	}

	p, err := BuildWordMatch(seed, s.lang, bank, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.store.PutWordMatchPuzzle(ctx, p); err != nil {
		return nil, err
	}
	slog.Info("word-match puzzle created", "seed", seed, "items", len(p.Items))
	return p, nil
}

// bank returns the word-match source bank, seeding it from the starter
// content when the store has none
func (s *Service) bank(ctx context.Context) ([]models.BankItem, error) {
	items, err := s.store.GetBank(ctx, s.lang)
	if err != nil {
		slog.Warn("failed to read word-match bank", "error", err)
	}
	if len(items) > 0 {
		return items, nil
	}
	if s.starter == nil {
		return nil, game.ErrNoContent
	}
	items = s.starter.Bank(s.lang)
	if len(items) == 0 {
		return nil, game.ErrNoContent
	}
	if err := s.store.PutBank(ctx, s.lang, items); err != nil {
		slog.Warn("failed to persist starter bank", "error", err)
	}
	slog.Info("word-match bank seeded from starter list", "language", s.lang, "items", len(items))
	return items, nil
}

// BuildWordMatch deterministically assembles a puzzle from the bank:
// a seeded shuffle picks the prompts, and the same seed drives distractor
// and answer-position selection. Identical seed and bank always produce
// the identical puzzle.
func BuildWordMatch(seed, lang string, bank []models.BankItem, createdAt time.Time) (*models.WordMatchPuzzle, error) {
	if len(bank) < models.WordMatchItems+2 {
		return nil, game.ErrNoContent
	}

	order := game.SeededOrder(len(bank), seed)
	seq := game.NewSequence(seed + ":choices")
	keys := []string{"A", "B", "C"}

	items := make([]models.WordMatchItem, 0, models.WordMatchItems)
	for i := 0; i < models.WordMatchItems; i++ {
		src := bank[order[i]]
		distractors := pickDistractors(bank, order, order[i], src.Translation, seq)

		correctPos := seq.Intn(3)
		choices := make([]models.WordMatchChoice, 3)
		d := 0
		for pos := 0; pos < 3; pos++ {
			text := src.Translation
			if pos != correctPos {
				text = distractors[d]
				d++
			}
			choices[pos] = models.WordMatchChoice{Key: keys[pos], Text: text}
		}

		items = append(items, models.WordMatchItem{
			Prompt:  src.Word,
			Choices: choices,
			Answer:  keys[correctPos],
		})
	}

	date := seed
	if idx := strings.IndexByte(seed, ':'); idx > 0 {
		date = seed[:idx]
	}

	return &models.WordMatchPuzzle{
		ID:        seed,
		Language:  lang,
		Date:      date,
		Items:     items,
		CreatedAt: createdAt,
	}, nil
}

// pickDistractors walks the shuffled bank from a seeded offset and takes
// the first two translations that differ from the correct one and from
// each other. A degenerate bank falls back to repeating the correct
// translation rather than failing.
func pickDistractors(bank []models.BankItem, order []int, skip int, correct string, seq *game.Sequence) [2]string {
	var out [2]string
	found := 0
	n := len(order)
	start := seq.Intn(n)
	for off := 0; off < n && found < 2; off++ {
		idx := order[(start+off)%n]
		if idx == skip {
			continue
		}
		tr := bank[idx].Translation
		if strings.EqualFold(tr, correct) {
			continue
		}
		if found == 1 && strings.EqualFold(tr, out[0]) {
			continue
		}
		out[found] = tr
		found++
	}
	for ; found < 2; found++ {
		out[found] = correct
	}
	return out
}

// DailyHangman returns today's hangman session for a difficulty, creating
// and caching it on first request. Word selection is a seed-derived index
// into the sorted pool of the tier.
func (s *Service) DailyHangman(ctx context.Context, difficulty models.DifficultyTier) (*models.HangmanSession, error) {
	seed := s.TodayHangmanSeed(difficulty)

	cached, err := s.store.GetHangmanSession(ctx, seed)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	entries := s.pool.Words(ctx, difficulty)
	idx, err := game.PickIndex(len(entries), seed)
	if err != nil {
		return nil, err
	}
	entry := entries[idx]

	now := s.now().UTC()
	sess := &models.HangmanSession{
		ID:          seed,
		Mode:        models.HangmanModeDaily,
		Language:    s.lang,
		Date:        now.Format("2006-01-02"),
		Word:        entry.Word,
		Hint:        entry.Hint,
		Difficulty:  difficulty,
		MaxAttempts: models.HangmanMaxAttempts,
		Status:      models.HangmanCreated,
		StartedAt:   now,
	}
	if err := s.store.PutHangmanSession(ctx, sess); err != nil {
		return nil, err
	}
	slog.Info("daily hangman created", "seed", seed, "difficulty", difficulty)
	return sess, nil
}

// PracticeHangman creates a fresh, uncached session with a uniformly
// random word. The seed carries a wall-clock timestamp and a random id so
// practice rounds never collide with daily content.
func (s *Service) PracticeHangman(ctx context.Context, difficulty models.DifficultyTier) (*models.HangmanSession, error) {
	entries := s.pool.Words(ctx, difficulty)
	if len(entries) == 0 {
		return nil, game.ErrNoContent
	}
	entry := entries[rand.Intn(len(entries))]

	now := s.now().UTC()
	return &models.HangmanSession{
		ID:          game.PracticeSeed(now, s.lang, uuid.NewString()[:8]),
		Mode:        models.HangmanModePractice,
		Language:    s.lang,
		Date:        now.Format("2006-01-02"),
		Word:        entry.Word,
		Hint:        entry.Hint,
		Difficulty:  difficulty,
		MaxAttempts: models.HangmanMaxAttempts,
		Status:      models.HangmanCreated,
		StartedAt:   now,
	}, nil
}

// HangmanBySeed returns the cached session for a seed
func (s *Service) HangmanBySeed(ctx context.Context, seed string) (*models.HangmanSession, error) {
	sess, err := s.store.GetHangmanSession(ctx, seed)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Guess applies a letter guess to a stored session and persists the
// result. Transitions to won when every distinct letter has a correct
// guess, to lost when incorrect guesses reach the attempt limit.
func (s *Service) Guess(ctx context.Context, seed, letter string) (*models.HangmanSession, *models.GuessRecord, error) {
	sess, err := s.HangmanBySeed(ctx, seed)
	if err != nil {
		return nil, nil, err
	}
	if sess.IsTerminal() {
		return sess, nil, ErrSessionFinished
	}

	letter = strings.ToLower(strings.TrimSpace(letter))
	runes := []rune(letter)
	if len(runes) != 1 {
		return sess, nil, ErrInvalidGuess
	}
	if sess.HasGuessed(letter) {
		return sess, nil, ErrAlreadyGuessed
	}

	record := models.GuessRecord{
		Letter:    letter,
		Correct:   strings.ContainsRune(strings.ToLower(sess.Word), runes[0]),
		Timestamp: s.now().UTC(),
	}
	sess.Guesses = append(sess.Guesses, record)
	sess.Status = models.HangmanGuessing

	switch {
	case sess.Solved():
		sess.Status = models.HangmanWon
	case sess.IncorrectCount() >= sess.MaxAttempts:
		sess.Status = models.HangmanLost
	}
	if sess.IsTerminal() {
		finished := s.now().UTC()
		sess.FinishedAt = &finished
	}

	if err := s.store.PutHangmanSession(ctx, sess); err != nil {
		return nil, nil, err
	}
	return sess, &record, nil
}

// Outcome derives the raw scoring numbers from a stored session. Elapsed
// time is wall-clock from session start to its terminal state.
func Outcome(sess *models.HangmanSession) models.HangmanOutcome {
	o := models.HangmanOutcome{
		Won:           sess.Status == models.HangmanWon,
		UniqueLetters: sess.UniqueLetterCount(),
	}
	for _, g := range sess.Guesses {
		if g.Correct {
			o.CorrectGuesses++
		} else {
			o.IncorrectGuesses++
		}
	}
	if sess.FinishedAt != nil {
		o.DurationMs = sess.FinishedAt.Sub(sess.StartedAt).Milliseconds()
	}
	return o
}
