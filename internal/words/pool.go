package words

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/wortwerk/wortspiel/internal/game"
	"github.com/wortwerk/wortspiel/internal/models"
	"github.com/wortwerk/wortspiel/internal/store"
	"github.com/wortwerk/wortspiel/internal/wordlist"
)

// HintSource looks up a hint for a bare word; failures degrade to ""
type HintSource interface {
	HintFor(ctx context.Context, word string) string
}

// Pool is the handle to the tiered word pool. It lazily loads the pool
// from the key-value store on first access (the loaded flag lives here,
// not in process-global state), seeds starter content when the store is
// empty, and keeps words unique case-insensitively across all tiers.
type Pool struct {
	store     store.Store
	providers Chain
	hints     HintSource
	starter   *wordlist.Loader
	lang      string

	mu     sync.Mutex
	loaded bool
	cache  map[models.DifficultyTier]map[string]string // tier -> word -> hint
}

// NewPool creates a pool handle. hints and starter may be nil.
func NewPool(s store.Store, providers Chain, hints HintSource, starter *wordlist.Loader, lang string) *Pool {
	return &Pool{
		store:     s,
		providers: providers,
		hints:     hints,
		starter:   starter,
		lang:      lang,
		cache:     make(map[models.DifficultyTier]map[string]string),
	}
}

// ensureLoadedLocked performs the one-time lazy load. Store read errors
// degrade to an empty pool; a later enrichment or restart recovers.
func (p *Pool) ensureLoadedLocked(ctx context.Context) {
	if p.loaded {
		return
	}

	empty := true
	for _, tier := range models.AllTiers() {
		words, err := p.store.GetPool(ctx, tier)
		if err != nil {
			slog.Warn("failed to load word pool, starting empty", "tier", tier, "error", err)
			words = map[string]string{}
		}
		if len(words) > 0 {
			empty = false
		}
		p.cache[tier] = words
	}
	p.loaded = true

	if empty && p.starter != nil {
		p.seedStarterLocked(ctx)
	}
}

// seedStarterLocked writes the shipped starter lists into an empty store
func (p *Pool) seedStarterLocked(ctx context.Context) {
	for _, tier := range models.AllTiers() {
		batch := make(map[string]string)
		for _, e := range p.starter.Words(p.lang, tier) {
			normalized := models.NormalizeWord(e.Word)
			if normalized == "" || p.containsLocked(normalized) {
				continue
			}
			batch[normalized] = e.Hint
			p.cache[tier][normalized] = e.Hint
		}
		if len(batch) == 0 {
			continue
		}
		if err := p.store.PutPoolWords(ctx, tier, batch); err != nil {
			slog.Warn("failed to persist starter words", "tier", tier, "error", err)
		}
	}
	slog.Info("word pool seeded from starter lists", "language", p.lang)
}

// containsLocked reports whether the normalized word exists in any tier
func (p *Pool) containsLocked(normalized string) bool {
	for _, tier := range models.AllTiers() {
		if _, ok := p.cache[tier][normalized]; ok {
			return true
		}
	}
	return false
}

// Words returns the current pool of a tier, sorted by word. The sort keeps
// index selection deterministic across processes even though the store
// hash has no order of its own.
func (p *Pool) Words(ctx context.Context, tier models.DifficultyTier) []models.WordEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLoadedLocked(ctx)

	entries := make([]models.WordEntry, 0, len(p.cache[tier]))
	for word, hint := range p.cache[tier] {
		entries = append(entries, models.WordEntry{Word: word, Hint: hint})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	return entries
}

// WordByIndex returns the entry at idx modulo the pool size, so any
// non-negative index is valid once the tier is non-empty. An empty tier is
// game.ErrNoContent.
func (p *Pool) WordByIndex(ctx context.Context, tier models.DifficultyTier, idx int) (models.WordEntry, error) {
	entries := p.Words(ctx, tier)
	if len(entries) == 0 {
		return models.WordEntry{}, game.ErrNoContent
	}
	return entries[idx%len(entries)], nil
}

// Counts returns the number of words per tier
func (p *Pool) Counts(ctx context.Context) map[models.DifficultyTier]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLoadedLocked(ctx)

	out := make(map[models.DifficultyTier]int, len(p.cache))
	for tier, words := range p.cache {
		out[tier] = len(words)
	}
	return out
}

// Add inserts one word. The word is normalized first; a word already
// present in any tier is rejected with (false, nil). When tier is empty
// the word is classified by length.
func (p *Pool) Add(ctx context.Context, word, hint string, tier models.DifficultyTier) (bool, error) {
	normalized := models.NormalizeWord(word)
	if normalized == "" {
		return false, nil
	}
	if !tier.IsValid() {
		tier = game.Classify(normalized)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLoadedLocked(ctx)

	if p.containsLocked(normalized) {
		return false, nil
	}

	if err := p.store.PutPoolWord(ctx, tier, normalized, hint); err != nil {
		return false, err
	}
	p.cache[tier][normalized] = hint
	return true, nil
}

// Enrich requests up to count candidate words from the provider chain,
// deduplicates them against the whole pool, classifies and persists them,
// and returns the number actually added. Provider and store failures
// degrade to fewer (or zero) added words and are only logged.
func (p *Pool) Enrich(ctx context.Context, count int) int {
	if count <= 0 {
		return 0
	}

	candidates := p.providers.FetchCandidates(ctx, p.lang, count)
	if len(candidates) == 0 {
		slog.Info("enrichment yielded no candidates", "requested", count)
		return 0
	}

	// Normalize and drop already-pooled words before paying for hint
	// lookups. This check is advisory; the write phase re-checks under
	// the lock.
	fresh := make([]models.WordEntry, 0, len(candidates))
	seen := make(map[string]bool)
	p.mu.Lock()
	p.ensureLoadedLocked(ctx)
	for _, c := range candidates {
		normalized := models.NormalizeWord(c.Word)
		if normalized == "" || seen[normalized] || p.containsLocked(normalized) {
			continue
		}
		seen[normalized] = true
		fresh = append(fresh, models.WordEntry{Word: normalized, Hint: c.Hint})
	}
	p.mu.Unlock()

	// Hint lookups are outbound HTTP calls and must run unlocked, or a
	// slow provider would stall every pool read for the duration.
	for i := range fresh {
		if fresh[i].Hint == "" && p.hints != nil {
			fresh[i].Hint = p.hints.HintFor(ctx, fresh[i].Word)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	batches := make(map[models.DifficultyTier]map[string]string)
	for _, c := range fresh {
		if p.containsLocked(c.Word) {
			continue
		}
		tier := game.Classify(c.Word)
		if batches[tier] == nil {
			batches[tier] = make(map[string]string)
		}
		batches[tier][c.Word] = c.Hint
	}

	added := 0
	for tier, batch := range batches {
		if err := p.store.PutPoolWords(ctx, tier, batch); err != nil {
			slog.Warn("failed to persist enriched words", "tier", tier, "count", len(batch), "error", err)
			continue
		}
		for word, hint := range batch {
			p.cache[tier][word] = hint
		}
		added += len(batch)
	}

	slog.Info("word pool enriched", "requested", count, "candidates", len(candidates), "added", added)
	return added
}
