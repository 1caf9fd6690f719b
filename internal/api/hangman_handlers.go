package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wortwerk/wortspiel/internal/game"
	"github.com/wortwerk/wortspiel/internal/models"
	"github.com/wortwerk/wortspiel/internal/puzzle"
)

// difficultyFromRequest resolves the difficulty query/body value, falling
// back to the configured default
func (s *Server) difficultyFromRequest(raw string) (models.DifficultyTier, bool) {
	if raw == "" {
		raw = s.game.DefaultDifficulty
	}
	tier := models.DifficultyTier(raw)
	return tier, tier.IsValid()
}

func (s *Server) handleTodayHangman(w http.ResponseWriter, r *http.Request) {
	tier, ok := s.difficultyFromRequest(r.URL.Query().Get("difficulty"))
	if !ok {
		respondError(w, http.StatusBadRequest, "validation_error", "difficulty must be 'easy', 'medium' or 'hard'")
		return
	}

	sess, err := s.sessions.DailyHangman(r.Context(), tier)
	if err != nil {
		if errors.Is(err, game.ErrNoContent) {
			respondError(w, http.StatusNotFound, "no_content", "no words available for this difficulty")
			return
		}
		slog.Error("failed to build daily hangman", "difficulty", tier, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to build hangman session")
		return
	}

	respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handlePracticeHangman(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
	}

	tier, ok := s.difficultyFromRequest(req.Difficulty)
	if !ok {
		respondError(w, http.StatusBadRequest, "validation_error", "difficulty must be 'easy', 'medium' or 'hard'")
		return
	}

	sess, err := s.sessions.PracticeHangman(r.Context(), tier)
	if err != nil {
		if errors.Is(err, game.ErrNoContent) {
			respondError(w, http.StatusNotFound, "no_content", "no words available for this difficulty")
			return
		}
		slog.Error("failed to build practice hangman", "difficulty", tier, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to build hangman session")
		return
	}

	respondJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleHangmanBySeed(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")
	if seed == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "seed is required")
		return
	}

	sess, err := s.sessions.HangmanBySeed(r.Context(), seed)
	if err != nil {
		if errors.Is(err, puzzle.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "no hangman session for this seed")
			return
		}
		slog.Error("failed to get hangman session", "seed", seed, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get hangman session")
		return
	}

	respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handleHangmanGuess(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")
	if seed == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "seed is required")
		return
	}

	var req struct {
		Letter string `json:"letter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess, record, err := s.sessions.Guess(r.Context(), seed, req.Letter)
	if err != nil {
		switch {
		case errors.Is(err, puzzle.ErrSessionNotFound):
			respondError(w, http.StatusNotFound, "not_found", "no hangman session for this seed")
		case errors.Is(err, puzzle.ErrInvalidGuess):
			respondError(w, http.StatusBadRequest, "validation_error", "guess must be a single letter")
		case errors.Is(err, puzzle.ErrAlreadyGuessed):
			respondError(w, http.StatusConflict, "already_guessed", "letter already guessed")
		case errors.Is(err, puzzle.ErrSessionFinished):
			respondError(w, http.StatusConflict, "session_finished", "session already finished")
		default:
			slog.Error("failed to apply guess", "seed", seed, "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to apply guess")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"guess":   record,
		"session": sess,
		"masked":  sess.MaskedWord(),
	})
}
