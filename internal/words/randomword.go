package words

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wortwerk/wortspiel/internal/models"
)

// RandomWordProvider queries a random-word service that returns a plain
// JSON array of words for a language.
type RandomWordProvider struct {
	BaseProvider
	baseURL    string
	httpClient *http.Client
}

// NewRandomWordProvider creates a provider against the given base URL
func NewRandomWordProvider(baseURL string, timeout time.Duration) *RandomWordProvider {
	return &RandomWordProvider{
		BaseProvider: BaseProvider{name: "random-word"},
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// FetchCandidates requests count random words. The service returns bare
// words without hints; hints are filled in downstream when a hint source
// is configured.
func (p *RandomWordProvider) FetchCandidates(ctx context.Context, lang string, count int) ([]models.WordEntry, error) {
	query := url.Values{}
	query.Set("lang", lang)
	query.Set("number", strconv.Itoa(count))
	reqURL := fmt.Sprintf("%s/word?%s", p.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("random-word request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("random-word status %d: %s", resp.StatusCode, string(body))
	}

	var raw []string
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("random-word decode failed: %w", err)
	}

	out := make([]models.WordEntry, 0, len(raw))
	for _, w := range raw {
		if w == "" {
			continue
		}
		out = append(out, models.WordEntry{Word: w})
	}
	return out, nil
}
