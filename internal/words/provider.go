// Package words manages the persisted word pool and its enrichment from
// external word providers.
package words

import (
	"context"
	"log/slog"

	"github.com/wortwerk/wortspiel/internal/models"
)

// Provider fetches candidate words from an external word source. Providers
// are interchangeable behind this one capability and tried in priority
// order until the requested quota is met.
type Provider interface {
	// FetchCandidates requests up to count candidate words for a language.
	// Returning fewer than count is normal; errors are handled by the
	// caller and never fatal.
	FetchCandidates(ctx context.Context, lang string, count int) ([]models.WordEntry, error)

	// Name identifies the provider in logs
	Name() string
}

// BaseProvider carries the name shared by provider implementations
type BaseProvider struct {
	name string
}

// Name returns the provider name
func (p *BaseProvider) Name() string {
	return p.name
}

// Chain is an ordered list of providers tried until the quota is met.
// A failing provider is logged and skipped, never propagated.
type Chain []Provider

// FetchCandidates collects up to count candidates across the chain
func (c Chain) FetchCandidates(ctx context.Context, lang string, count int) []models.WordEntry {
	var out []models.WordEntry
	for _, p := range c {
		if len(out) >= count {
			break
		}
		candidates, err := p.FetchCandidates(ctx, lang, count-len(out))
		if err != nil {
			slog.Warn("word provider failed", "provider", p.Name(), "error", err)
			continue
		}
		slog.Debug("word provider returned candidates", "provider", p.Name(), "count", len(candidates))
		out = append(out, candidates...)
	}
	if len(out) > count {
		out = out[:count]
	}
	return out
}
