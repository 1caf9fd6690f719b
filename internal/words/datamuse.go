package words

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wortwerk/wortspiel/internal/models"
)

// datamuseWord is one entry of a thesaurus-style response
type datamuseWord struct {
	Word  string   `json:"word"`
	Score int      `json:"score"`
	Defs  []string `json:"defs,omitempty"`
}

// DatamuseProvider queries a thesaurus-style word service. It serves two
// roles: a secondary candidate source (similarity search around topic
// terms) and a hint source for words that arrive without one.
type DatamuseProvider struct {
	BaseProvider
	baseURL    string
	topics     []string
	httpClient *http.Client
}

// NewDatamuseProvider creates a provider against the given base URL.
// Topic terms steer the similarity search that produces candidates.
func NewDatamuseProvider(baseURL string, topics []string, timeout time.Duration) *DatamuseProvider {
	if len(topics) == 0 {
		topics = []string{"alltag", "haus", "essen", "reise"}
	}
	return &DatamuseProvider{
		BaseProvider: BaseProvider{name: "datamuse"},
		baseURL:      baseURL,
		topics:       topics,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// FetchCandidates collects words similar to the configured topic terms
func (p *DatamuseProvider) FetchCandidates(ctx context.Context, lang string, count int) ([]models.WordEntry, error) {
	perTopic := count/len(p.topics) + 1
	var out []models.WordEntry
	for _, topic := range p.topics {
		if len(out) >= count {
			break
		}
		entries, err := p.similar(ctx, lang, topic, perTopic)
		if err != nil {
			// one failing topic query should not sink the others
			continue
		}
		out = append(out, entries...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("datamuse returned no candidates for %d topics", len(p.topics))
	}
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

func (p *DatamuseProvider) similar(ctx context.Context, lang, term string, max int) ([]models.WordEntry, error) {
	query := url.Values{}
	query.Set("ml", term)
	query.Set("v", lang)
	query.Set("max", strconv.Itoa(max))
	query.Set("md", "d")

	raw, err := p.get(ctx, fmt.Sprintf("%s/words?%s", p.baseURL, query.Encode()))
	if err != nil {
		return nil, err
	}

	out := make([]models.WordEntry, 0, len(raw))
	for _, w := range raw {
		if w.Word == "" || strings.Contains(w.Word, " ") {
			continue
		}
		out = append(out, models.WordEntry{Word: w.Word, Hint: firstDef(w.Defs)})
	}
	return out, nil
}

// HintFor looks up a short definition usable as a hint. Failures degrade
// to an empty hint.
func (p *DatamuseProvider) HintFor(ctx context.Context, word string) string {
	query := url.Values{}
	query.Set("sp", word)
	query.Set("md", "d")
	query.Set("max", "1")

	raw, err := p.get(ctx, fmt.Sprintf("%s/words?%s", p.baseURL, query.Encode()))
	if err != nil || len(raw) == 0 {
		return ""
	}
	return firstDef(raw[0].Defs)
}

func (p *DatamuseProvider) get(ctx context.Context, reqURL string) ([]datamuseWord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datamuse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("datamuse status %d: %s", resp.StatusCode, string(body))
	}

	var raw []datamuseWord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("datamuse decode failed: %w", err)
	}
	return raw, nil
}

func firstDef(defs []string) string {
	if len(defs) == 0 {
		return ""
	}
	// defs come prefixed with part-of-speech and a tab
	def := defs[0]
	if idx := strings.IndexByte(def, '\t'); idx >= 0 {
		def = def[idx+1:]
	}
	return def
}
