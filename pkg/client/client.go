// Package client is a Go SDK for the wortspiel API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/wortwerk/wortspiel/internal/models"
)

// UserHeader carries the username on every request
const UserHeader = "X-Username"

// Client is a Go SDK for the wortspiel API
type Client struct {
	baseURL    string
	username   string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new wortspiel client. The username identifies the
// player on endpoints that track per-user state.
func NewClient(baseURL, username string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		username: username,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// InitState is the start-screen snapshot returned by /api/init
type InitState struct {
	Username     string              `json:"username"`
	Language     string              `json:"language"`
	Progress     models.UserProgress `json:"progress"`
	TodaySeed    string              `json:"today_seed"`
	HangmanSeeds map[string]string   `json:"hangman_seeds"`
	PlayedToday  bool                `json:"played_today"`
}

// GuessResult is the response of a single hangman guess
type GuessResult struct {
	Guess   *models.GuessRecord    `json:"guess"`
	Session *models.HangmanSession `json:"session"`
	Masked  string                 `json:"masked"`
}

// WordCounts is the per-tier size of the word pool
type WordCounts struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// EnrichResult reports the outcome of an enrichment run
type EnrichResult struct {
	Requested int `json:"requested"`
	Added     int `json:"added"`
}

// Init fetches everything needed to render the start screen
func (c *Client) Init(ctx context.Context) (*InitState, error) {
	var out InitState
	if err := c.get(ctx, "/api/init", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayPuzzle fetches today's word-match puzzle
func (c *Client) TodayPuzzle(ctx context.Context) (*models.WordMatchPuzzle, error) {
	var out models.WordMatchPuzzle
	if err := c.get(ctx, "/api/puzzle/today", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Puzzle fetches the word-match puzzle for a seed
func (c *Client) Puzzle(ctx context.Context, seed string) (*models.WordMatchPuzzle, error) {
	var out models.WordMatchPuzzle
	if err := c.get(ctx, "/api/puzzle/"+url.PathEscape(seed), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayHangman fetches today's hangman session for a difficulty.
// An empty difficulty uses the server default.
func (c *Client) TodayHangman(ctx context.Context, difficulty string) (*models.HangmanSession, error) {
	path := "/api/hangman/today"
	if difficulty != "" {
		path += "?difficulty=" + url.QueryEscape(difficulty)
	}
	var out models.HangmanSession
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PracticeHangman creates a fresh practice session
func (c *Client) PracticeHangman(ctx context.Context, difficulty string) (*models.HangmanSession, error) {
	req := map[string]string{}
	if difficulty != "" {
		req["difficulty"] = difficulty
	}
	var out models.HangmanSession
	if err := c.post(ctx, "/api/hangman/practice", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hangman fetches the stored hangman session for a seed
func (c *Client) Hangman(ctx context.Context, seed string) (*models.HangmanSession, error) {
	var out models.HangmanSession
	if err := c.get(ctx, "/api/hangman/"+url.PathEscape(seed), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Guess submits a letter guess against a stored hangman session
func (c *Client) Guess(ctx context.Context, seed, letter string) (*GuessResult, error) {
	var out GuessResult
	path := "/api/hangman/" + url.PathEscape(seed) + "/guess"
	if err := c.post(ctx, path, map[string]string{"letter": letter}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitResult scores and records a finished session
func (c *Client) SubmitResult(ctx context.Context, req models.SubmitResultRequest) (*models.GameResult, error) {
	var out models.GameResult
	if err := c.post(ctx, "/api/submit-result", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserState fetches a user's streak state
func (c *Client) UserState(ctx context.Context, userID string) (*models.UserProgress, error) {
	var out models.UserProgress
	if err := c.get(ctx, "/api/user/"+url.PathEscape(userID)+"/state", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches a user's most recent results
func (c *Client) History(ctx context.Context, userID string, limit int) ([]*models.GameResult, error) {
	path := "/api/user/" + url.PathEscape(userID) + "/history"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var out struct {
		Results []*models.GameResult `json:"results"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Leaderboard fetches the leaderboard for a date (YYYY-MM-DD).
// An empty date means today.
func (c *Client) Leaderboard(ctx context.Context, date string, limit int) ([]*models.LeaderboardEntry, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	path := "/api/leaderboard"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out struct {
		Entries []*models.LeaderboardEntry `json:"entries"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// Words fetches the per-tier word pool counts
func (c *Client) Words(ctx context.Context) (*WordCounts, error) {
	var out WordCounts
	if err := c.get(ctx, "/api/words/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WordsByTier fetches the pool entries of one difficulty tier
func (c *Client) WordsByTier(ctx context.Context, difficulty string) ([]models.WordEntry, error) {
	var out struct {
		Words []models.WordEntry `json:"words"`
	}
	if err := c.get(ctx, "/api/words/"+url.PathEscape(difficulty), &out); err != nil {
		return nil, err
	}
	return out.Words, nil
}

// AddWord adds a word to the pool. An empty tier lets the server classify
// by length.
func (c *Client) AddWord(ctx context.Context, word, hint, tier string) error {
	return c.post(ctx, "/api/words/add", models.AddWordRequest{
		Word: word, Hint: hint, Tier: tier,
	}, nil)
}

// Enrich asks the server to pull new words from its external providers
func (c *Client) Enrich(ctx context.Context, count int) (*EnrichResult, error) {
	var out EnrichResult
	if err := c.post(ctx, "/api/words/enrich", models.EnrichRequest{Count: count}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks if the service is healthy
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.doRequest(ctx, "GET", path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.doRequest(ctx, "POST", path, bytes.NewReader(payload), out)
}

// doRequest performs an HTTP request and unwraps the response envelope
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.Header.Set(UserHeader, c.username)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var result struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if !result.Success {
		if result.Error != nil {
			return fmt.Errorf("API error: %s - %s", result.Error.Code, result.Error.Message)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil && len(result.Data) > 0 {
		if err := json.Unmarshal(result.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
