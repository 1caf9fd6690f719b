package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wortwerk/wortspiel/internal/game"
	"github.com/wortwerk/wortspiel/internal/puzzle"
)

func (s *Server) handleTodayPuzzle(w http.ResponseWriter, r *http.Request) {
	p, err := s.sessions.DailyWordMatch(r.Context())
	if err != nil {
		if errors.Is(err, game.ErrNoContent) {
			respondError(w, http.StatusNotFound, "no_content", "no content available")
			return
		}
		slog.Error("failed to build daily puzzle", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to build puzzle")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handlePuzzleBySeed(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")
	if seed == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "seed is required")
		return
	}

	p, err := s.sessions.WordMatchBySeed(r.Context(), seed)
	if err != nil {
		switch {
		case errors.Is(err, puzzle.ErrSessionNotFound):
			respondError(w, http.StatusNotFound, "not_found", "no puzzle for this seed")
		case errors.Is(err, game.ErrNoContent):
			respondError(w, http.StatusNotFound, "no_content", "no content available")
		default:
			slog.Error("failed to get puzzle", "seed", seed, "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to get puzzle")
		}
		return
	}

	respondJSON(w, http.StatusOK, p)
}
