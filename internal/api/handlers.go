package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/wortwerk/wortspiel/internal/models"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "not_ready", "key-value store unavailable")
		return
	}
	if s.archive != nil {
		if err := s.archive.Ping(r.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, "not_ready", "results archive unavailable")
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// Init handler: everything the client needs to render the start screen

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	progress, err := s.store.GetProgress(r.Context(), user)
	if err != nil {
		slog.Error("failed to load user progress", "user", user, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load user state")
		return
	}

	todaySeed := s.sessions.TodaySeed()
	played, err := s.store.GetPlayedResult(r.Context(), user, todaySeed, models.ModeWordMatch)
	if err != nil {
		slog.Warn("failed to check played marker", "user", user, "error", err)
	}

	hangmanSeeds := make(map[string]string, len(models.AllTiers()))
	for _, tier := range models.AllTiers() {
		hangmanSeeds[string(tier)] = s.sessions.TodayHangmanSeed(tier)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"username":      user,
		"language":      s.game.Language,
		"progress":      progress,
		"today_seed":    todaySeed,
		"hangman_seeds": hangmanSeeds,
		"played_today":  played != nil,
	})
}
