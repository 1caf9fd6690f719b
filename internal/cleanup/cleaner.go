// Package cleanup prunes cached session blobs whose seed date has fallen
// out of the retention window, so the key-value store does not grow
// unbounded with one puzzle and one hangman blob per day.
package cleanup

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/wortwerk/wortspiel/internal/store"
)

// Cleaner handles periodic pruning of expired session blobs
type Cleaner struct {
	store     store.Store
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
}

// NewCleaner creates a new cleanup worker
func NewCleaner(s store.Store, interval, retention time.Duration) *Cleaner {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = 14 * 24 * time.Hour
	}
	return &Cleaner{
		store:     s,
		interval:  interval,
		retention: retention,
		now:       time.Now,
	}
}

// Start begins the cleanup worker in a goroutine
func (c *Cleaner) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Cleaner) run(ctx context.Context) {
	slog.Info("session pruner started", "interval", c.interval, "retention", c.retention)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Run immediately on start
	c.prune(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("session pruner stopped")
			return
		case <-ticker.C:
			c.prune(ctx)
		}
	}
}

// prune deletes session blobs whose seed date precedes the retention
// cutoff
func (c *Cleaner) prune(ctx context.Context) {
	cutoff := c.now().UTC().Add(-c.retention)

	var expired []string
	for _, prefix := range []string{store.PuzzleKeyPrefix, store.HangmanKeyPrefix} {
		keys, err := c.store.ScanKeys(ctx, prefix+"*")
		if err != nil {
			slog.Error("failed to scan session keys", "prefix", prefix, "error", err)
			continue
		}
		for _, key := range keys {
			seed := strings.TrimPrefix(key, prefix)
			date, ok := seedDate(seed)
			if !ok {
				continue
			}
			if date.Before(cutoff) {
				expired = append(expired, key)
			}
		}
	}

	if len(expired) == 0 {
		slog.Debug("no expired sessions found")
		return
	}

	if err := c.store.DeleteKeys(ctx, expired...); err != nil {
		slog.Error("failed to delete expired sessions", "error", err)
		return
	}

	slog.Info("expired sessions pruned", "count", len(expired))
}

// seedDate parses the YYYY-MM-DD prefix every seed starts with
func seedDate(seed string) (time.Time, bool) {
	if len(seed) < 10 {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", seed[:10])
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
