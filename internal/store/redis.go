package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/wortwerk/wortspiel/internal/models"
)

// RedisStore implements Store on a Redis connection
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(address, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// GetProgress reads the per-user streak counters. A user that has never
// played gets zero values, not an error.
func (s *RedisStore) GetProgress(ctx context.Context, userID string) (models.UserProgress, error) {
	p := models.UserProgress{UserID: userID}

	vals, err := s.client.MGet(ctx,
		userStreakKey(userID),
		userMaxStreakKey(userID),
		userLastPlayedKey(userID),
	).Result()
	if err != nil {
		return p, fmt.Errorf("failed to read progress: %w", err)
	}

	p.Streak = parseIntValue(vals[0])
	p.MaxStreak = parseIntValue(vals[1])
	if v, ok := vals[2].(string); ok {
		p.LastPlayed = v
	}
	return p, nil
}

// PutProgress writes the per-user streak counters. Three individual key
// writes; there is no transaction around the surrounding read-modify-write.
func (s *RedisStore) PutProgress(ctx context.Context, p models.UserProgress) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userStreakKey(p.UserID), strconv.Itoa(p.Streak), 0)
	pipe.Set(ctx, userMaxStreakKey(p.UserID), strconv.Itoa(p.MaxStreak), 0)
	if p.LastPlayed != "" {
		pipe.Set(ctx, userLastPlayedKey(p.UserID), p.LastPlayed, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}

// MarkPlayed stores the result blob under the played marker key, only once
// per (user, seed, mode)
func (s *RedisStore) MarkPlayed(ctx context.Context, result models.GameResult) (bool, error) {
	blob, err := json.Marshal(result)
	if err != nil {
		return false, fmt.Errorf("failed to marshal result: %w", err)
	}
	ok, err := s.client.SetNX(ctx, playedKey(result.UserID, result.Seed, result.Mode), blob, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark played: %w", err)
	}
	return ok, nil
}

// GetPlayedResult returns the stored result blob, or nil if the user has
// not played that seed
func (s *RedisStore) GetPlayedResult(ctx context.Context, userID, seed string, mode models.GameMode) (*models.GameResult, error) {
	raw, err := s.client.Get(ctx, playedKey(userID, seed, mode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read played result: %w", err)
	}
	var result models.GameResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal played result: %w", err)
	}
	return &result, nil
}

// GetPool returns the word->hint hash of a tier; empty map when unset
func (s *RedisStore) GetPool(ctx context.Context, tier models.DifficultyTier) (map[string]string, error) {
	words, err := s.client.HGetAll(ctx, poolKey(tier)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read pool %s: %w", tier, err)
	}
	return words, nil
}

// PutPoolWord appends one word to a tier's hash
func (s *RedisStore) PutPoolWord(ctx context.Context, tier models.DifficultyTier, word, hint string) error {
	if err := s.client.HSet(ctx, poolKey(tier), word, hint).Err(); err != nil {
		return fmt.Errorf("failed to write pool word: %w", err)
	}
	return nil
}

// PutPoolWords appends a batch of words to a tier's hash
func (s *RedisStore) PutPoolWords(ctx context.Context, tier models.DifficultyTier, words map[string]string) error {
	if len(words) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(words)*2)
	for word, hint := range words {
		args = append(args, word, hint)
	}
	if err := s.client.HSet(ctx, poolKey(tier), args...).Err(); err != nil {
		return fmt.Errorf("failed to write pool words: %w", err)
	}
	return nil
}

// GetWordMatchPuzzle returns a cached puzzle blob, nil if absent
func (s *RedisStore) GetWordMatchPuzzle(ctx context.Context, seed string) (*models.WordMatchPuzzle, error) {
	var p models.WordMatchPuzzle
	ok, err := s.getJSON(ctx, PuzzleKey(seed), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// PutWordMatchPuzzle caches a materialized puzzle blob
func (s *RedisStore) PutWordMatchPuzzle(ctx context.Context, p *models.WordMatchPuzzle) error {
	return s.putJSON(ctx, PuzzleKey(p.ID), p)
}

// GetHangmanSession returns a cached hangman session blob, nil if absent
func (s *RedisStore) GetHangmanSession(ctx context.Context, seed string) (*models.HangmanSession, error) {
	var sess models.HangmanSession
	ok, err := s.getJSON(ctx, HangmanKey(seed), &sess)
	if err != nil || !ok {
		return nil, err
	}
	return &sess, nil
}

// PutHangmanSession caches a hangman session blob
func (s *RedisStore) PutHangmanSession(ctx context.Context, sess *models.HangmanSession) error {
	return s.putJSON(ctx, HangmanKey(sess.ID), sess)
}

// GetBank returns the word-match source bank for a language, nil if unset
func (s *RedisStore) GetBank(ctx context.Context, lang string) ([]models.BankItem, error) {
	var items []models.BankItem
	ok, err := s.getJSON(ctx, bankKey(lang), &items)
	if err != nil || !ok {
		return nil, err
	}
	return items, nil
}

// PutBank replaces the word-match source bank for a language
func (s *RedisStore) PutBank(ctx context.Context, lang string, items []models.BankItem) error {
	return s.putJSON(ctx, bankKey(lang), items)
}

// ScanKeys collects all keys matching a pattern via cursor iteration
func (s *RedisStore) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var out []string
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}
		out = append(out, keys...)
		cursor = next
		if cursor == 0 {
			return out, nil
		}
	}
}

// DeleteKeys removes the given keys
func (s *RedisStore) DeleteKeys(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}

// Ping verifies Redis connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) putJSON(ctx context.Context, key string, v interface{}) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func parseIntValue(v interface{}) int {
	str, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0
	}
	return n
}
