package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wortwerk/wortspiel/internal/models"
)

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	counts := s.pool.Counts(r.Context())

	total := 0
	byTier := make(map[string]int, len(counts))
	for tier, n := range counts {
		byTier[string(tier)] = n
		total += n
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"counts": byTier,
		"total":  total,
	})
}

func (s *Server) handleWordsByTier(w http.ResponseWriter, r *http.Request) {
	tier := models.DifficultyTier(chi.URLParam(r, "difficulty"))
	if !tier.IsValid() {
		respondError(w, http.StatusBadRequest, "validation_error", "difficulty must be 'easy', 'medium' or 'hard'")
		return
	}

	entries := s.pool.Words(r.Context(), tier)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"difficulty": tier,
		"words":      entries,
		"total":      len(entries),
	})
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req models.AddWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if models.NormalizeWord(req.Word) == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "word is required")
		return
	}

	tier := models.DifficultyTier(req.Tier)
	if req.Tier != "" && !tier.IsValid() {
		respondError(w, http.StatusBadRequest, "validation_error", "difficulty must be 'easy', 'medium' or 'hard'")
		return
	}

	added, err := s.pool.Add(r.Context(), req.Word, req.Hint, tier)
	if err != nil {
		slog.Error("failed to add word", "word", req.Word, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add word")
		return
	}
	if !added {
		respondError(w, http.StatusConflict, "word_exists", "word already exists in the pool")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"word": models.NormalizeWord(req.Word),
	})
}

func (s *Server) handleEnrichWords(w http.ResponseWriter, r *http.Request) {
	var req models.EnrichRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
	}
	if req.Count <= 0 {
		req.Count = s.game.EnrichCount
	}

	added := s.pool.Enrich(r.Context(), req.Count)
	respondJSON(w, http.StatusOK, map[string]int{
		"requested": req.Count,
		"added":     added,
	})
}
