package store

import (
	"context"
	"encoding/json"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/wortwerk/wortspiel/internal/models"
)

// MemoryStore implements Store on process-local maps. It backs tests and
// local development without a Redis instance; it mirrors the Redis key
// layout so ScanKeys patterns behave the same.
type MemoryStore struct {
	mu     sync.RWMutex
	kv     map[string][]byte            // JSON blobs and scalar strings
	hashes map[string]map[string]string // pool hashes
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		kv:     make(map[string][]byte),
		hashes: make(map[string]map[string]string),
	}
}

func (s *MemoryStore) GetProgress(ctx context.Context, userID string) (models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := models.UserProgress{UserID: userID}
	p.Streak = atoiBytes(s.kv[userStreakKey(userID)])
	p.MaxStreak = atoiBytes(s.kv[userMaxStreakKey(userID)])
	p.LastPlayed = string(s.kv[userLastPlayedKey(userID)])
	return p, nil
}

func (s *MemoryStore) PutProgress(ctx context.Context, p models.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[userStreakKey(p.UserID)] = itoaBytes(p.Streak)
	s.kv[userMaxStreakKey(p.UserID)] = itoaBytes(p.MaxStreak)
	if p.LastPlayed != "" {
		s.kv[userLastPlayedKey(p.UserID)] = []byte(p.LastPlayed)
	}
	return nil
}

func (s *MemoryStore) MarkPlayed(ctx context.Context, result models.GameResult) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := playedKey(result.UserID, result.Seed, result.Mode)
	if _, exists := s.kv[key]; exists {
		return false, nil
	}
	blob, err := json.Marshal(result)
	if err != nil {
		return false, err
	}
	s.kv[key] = blob
	return true, nil
}

func (s *MemoryStore) GetPlayedResult(ctx context.Context, userID, seed string, mode models.GameMode) (*models.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.kv[playedKey(userID, seed, mode)]
	if !ok {
		return nil, nil
	}
	var result models.GameResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *MemoryStore) GetPool(ctx context.Context, tier models.DifficultyTier) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.hashes[poolKey(tier)]))
	for w, h := range s.hashes[poolKey(tier)] {
		out[w] = h
	}
	return out, nil
}

func (s *MemoryStore) PutPoolWord(ctx context.Context, tier models.DifficultyTier, word, hint string) error {
	return s.PutPoolWords(ctx, tier, map[string]string{word: hint})
}

func (s *MemoryStore) PutPoolWords(ctx context.Context, tier models.DifficultyTier, words map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := poolKey(tier)
	if s.hashes[key] == nil {
		s.hashes[key] = make(map[string]string)
	}
	for w, h := range words {
		s.hashes[key][w] = h
	}
	return nil
}

func (s *MemoryStore) GetWordMatchPuzzle(ctx context.Context, seed string) (*models.WordMatchPuzzle, error) {
	var p models.WordMatchPuzzle
	if ok, err := s.getJSON(PuzzleKey(seed), &p); err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *MemoryStore) PutWordMatchPuzzle(ctx context.Context, p *models.WordMatchPuzzle) error {
	return s.putJSON(PuzzleKey(p.ID), p)
}

func (s *MemoryStore) GetHangmanSession(ctx context.Context, seed string) (*models.HangmanSession, error) {
	var sess models.HangmanSession
	if ok, err := s.getJSON(HangmanKey(seed), &sess); err != nil || !ok {
		return nil, err
	}
	return &sess, nil
}

func (s *MemoryStore) PutHangmanSession(ctx context.Context, sess *models.HangmanSession) error {
	return s.putJSON(HangmanKey(sess.ID), sess)
}

func (s *MemoryStore) GetBank(ctx context.Context, lang string) ([]models.BankItem, error) {
	var items []models.BankItem
	if ok, err := s.getJSON(bankKey(lang), &items); err != nil || !ok {
		return nil, err
	}
	return items, nil
}

func (s *MemoryStore) PutBank(ctx context.Context, lang string, items []models.BankItem) error {
	return s.putJSON(bankKey(lang), items)
}

func (s *MemoryStore) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for key := range s.kv {
		if matched, _ := path.Match(pattern, key); matched {
			out = append(out, key)
		}
	}
	for key := range s.hashes {
		if matched, _ := path.Match(pattern, key); matched {
			out = append(out, key)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteKeys(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.kv, key)
		delete(s.hashes, key)
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }
func (s *MemoryStore) Close() error                   { return nil }

func (s *MemoryStore) getJSON(key string, dst interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.kv[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (s *MemoryStore) putJSON(key string, v interface{}) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[key] = blob
	return nil
}

func atoiBytes(b []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0
	}
	return n
}

func itoaBytes(n int) []byte {
	return []byte(strconv.Itoa(n))
}
