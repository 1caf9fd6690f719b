package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wortwerk/wortspiel/internal/config"
	"github.com/wortwerk/wortspiel/internal/puzzle"
	"github.com/wortwerk/wortspiel/internal/storage"
	"github.com/wortwerk/wortspiel/internal/store"
	"github.com/wortwerk/wortspiel/internal/words"
)

// Server represents the HTTP API server
type Server struct {
	config   config.ServerConfig
	game     config.GameConfig
	router   *chi.Mux
	store    store.Store
	pool     *words.Pool
	sessions *puzzle.Service
	archive  storage.Repository
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	gameCfg config.GameConfig,
	st store.Store,
	pool *words.Pool,
	sessions *puzzle.Service,
	archive storage.Repository,
) *Server {
	s := &Server{
		config:   cfg,
		game:     gameCfg,
		store:    st,
		pool:     pool,
		sessions: sessions,
		archive:  archive,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", UserHeader},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health checks (public, outside the game API)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(identityMiddleware)

		r.With(requireUser).Get("/init", s.handleInit)

		// Word-match puzzles
		r.Get("/puzzle/today", s.handleTodayPuzzle)
		r.Get("/puzzle/{seed}", s.handlePuzzleBySeed)

		// Hangman
		r.Get("/hangman/today", s.handleTodayHangman)
		r.Post("/hangman/practice", s.handlePracticeHangman)
		r.Get("/hangman/{seed}/live", s.handleHangmanLive)
		r.Post("/hangman/{seed}/guess", s.handleHangmanGuess)
		r.Get("/hangman/{seed}", s.handleHangmanBySeed)

		// Results
		r.With(requireUser).Post("/submit-result", s.handleSubmitResult)
		r.Get("/user/{userId}/state", s.handleUserState)
		r.Get("/user/{userId}/history", s.handleUserHistory)
		r.Get("/leaderboard", s.handleLeaderboard)

		// Word pool
		r.Route("/words", func(r chi.Router) {
			r.Get("/", s.handleListWords)
			r.Post("/add", s.handleAddWord)
			r.Post("/enrich", s.handleEnrichWords)
			r.Get("/{difficulty}", s.handleWordsByTier)
		})
	})

	s.router = r
}
