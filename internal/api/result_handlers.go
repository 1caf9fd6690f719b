package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wortwerk/wortspiel/internal/game"
	"github.com/wortwerk/wortspiel/internal/models"
	"github.com/wortwerk/wortspiel/internal/puzzle"
)

const (
	defaultHistoryLimit     = 20
	defaultLeaderboardLimit = 10
)

func (s *Server) handleSubmitResult(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req models.SubmitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Seed == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "seed is required")
		return
	}

	var (
		score      int
		total      int
		perfect    bool
		passed     bool
		durationMs int64
		wmScore    game.WordMatchScore
		outcome    models.HangmanOutcome
	)

	switch req.Mode {
	case models.ModeWordMatch:
		if len(req.Answers) == 0 {
			respondError(w, http.StatusBadRequest, "validation_error", "answers are required for word-match results")
			return
		}
		wmScore = game.ScoreWordMatch(req.Answers)
		score, total = wmScore.Score, wmScore.Total
		perfect, passed = wmScore.Perfect, wmScore.Passed
		durationMs = wmScore.DurationMs

	case models.ModeHangman:
		o, err := s.hangmanOutcome(r, &req)
		if err != nil {
			var apiErr *submitError
			if errors.As(err, &apiErr) {
				respondError(w, apiErr.status, apiErr.code, apiErr.message)
				return
			}
			slog.Error("failed to resolve hangman outcome", "seed", req.Seed, "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to score result")
			return
		}
		outcome = o
		score, perfect = game.ScoreHangman(o)
		passed = o.Won
		durationMs = o.DurationMs

	default:
		respondError(w, http.StatusBadRequest, "validation_error", "mode must be 'word-match' or 'hangman'")
		return
	}

	progress, err := s.store.GetProgress(r.Context(), user)
	if err != nil {
		slog.Error("failed to load user progress", "user", user, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load user state")
		return
	}

	newStreak, newMax := game.NextStreak(progress.Streak, progress.MaxStreak, passed)

	result := models.GameResult{
		UserID:     user,
		Seed:       req.Seed,
		Mode:       req.Mode,
		Score:      score,
		Total:      total,
		Perfect:    perfect,
		Passed:     passed,
		DurationMs: durationMs,
		Streak:     newStreak,
		MaxStreak:  newMax,
		CreatedAt:  time.Now().UTC(),
	}

	date := seedDate(req.Seed)
	if req.Mode == models.ModeWordMatch {
		result.ShareText = game.WordMatchShareText(date, wmScore, newStreak) + "\n" + game.WordMatchShareGrid(req.Answers)
	} else {
		result.ShareText = game.HangmanShareText(date, outcome, score, newStreak)
	}

	// The played marker is the write guard: if it already exists this seed
	// has been scored for this user and nothing else may change.
	marked, err := s.store.MarkPlayed(r.Context(), result)
	if err != nil {
		slog.Error("failed to mark seed played", "user", user, "seed", req.Seed, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to record result")
		return
	}
	if !marked {
		respondError(w, http.StatusConflict, "already_submitted", "result already submitted for this seed")
		return
	}

	progress.UserID = user
	progress.Streak = newStreak
	progress.MaxStreak = newMax
	progress.LastPlayed = req.Seed
	if err := s.store.PutProgress(r.Context(), progress); err != nil {
		slog.Error("failed to store user progress", "user", user, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to record result")
		return
	}

	if s.archive != nil {
		if err := s.archive.InsertResult(r.Context(), &result); err != nil {
			slog.Error("failed to archive result", "user", user, "seed", req.Seed, "error", err)
		}
	}

	respondJSON(w, http.StatusOK, result)
}

// submitError carries an HTTP mapping out of outcome resolution
type submitError struct {
	status  int
	code    string
	message string
}

func (e *submitError) Error() string { return e.message }

// hangmanOutcome resolves the numbers to score. Stored sessions are the
// source of truth; practice rounds never hit the store, so the client
// reports the outcome itself.
func (s *Server) hangmanOutcome(r *http.Request, req *models.SubmitResultRequest) (models.HangmanOutcome, error) {
	sess, err := s.sessions.HangmanBySeed(r.Context(), req.Seed)
	if err != nil {
		if !errors.Is(err, puzzle.ErrSessionNotFound) {
			return models.HangmanOutcome{}, err
		}
		if req.Hangman == nil {
			return models.HangmanOutcome{}, &submitError{
				status:  http.StatusBadRequest,
				code:    "validation_error",
				message: "hangman outcome is required for unstored sessions",
			}
		}
		return *req.Hangman, nil
	}

	if !sess.IsTerminal() {
		return models.HangmanOutcome{}, &submitError{
			status:  http.StatusConflict,
			code:    "session_unfinished",
			message: "hangman session is still in progress",
		}
	}

	o := puzzle.Outcome(sess)
	if o.DurationMs == 0 && req.Hangman != nil {
		o.DurationMs = req.Hangman.DurationMs
	}
	return o, nil
}

// seedDate extracts the YYYY-MM-DD prefix of a seed for display
func seedDate(seed string) string {
	if len(seed) >= 10 {
		return seed[:10]
	}
	return seed
}

func (s *Server) handleUserState(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "userId is required")
		return
	}

	progress, err := s.store.GetProgress(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load user progress", "user", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load user state")
		return
	}
	progress.UserID = userID

	respondJSON(w, http.StatusOK, progress)
}

func (s *Server) handleUserHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "userId is required")
		return
	}
	if s.archive == nil {
		respondError(w, http.StatusServiceUnavailable, "unavailable", "results archive is not configured")
		return
	}

	limit := queryLimit(r, "limit", defaultHistoryLimit)
	results, err := s.archive.ListUserResults(r.Context(), userID, limit)
	if err != nil {
		slog.Error("failed to load user history", "user", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"results": results,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		respondError(w, http.StatusServiceUnavailable, "unavailable", "results archive is not configured")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = seedDate(s.sessions.TodaySeed())
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "date must be YYYY-MM-DD")
		return
	}

	limit := queryLimit(r, "limit", defaultLeaderboardLimit)
	entries, err := s.archive.Leaderboard(r.Context(), date, limit)
	if err != nil {
		slog.Error("failed to load leaderboard", "date", date, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load leaderboard")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"date":    date,
		"entries": entries,
	})
}

func queryLimit(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 100 {
		return fallback
	}
	return n
}
