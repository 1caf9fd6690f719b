package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/wortwerk/wortspiel/internal/game"
	"github.com/wortwerk/wortspiel/internal/models"
	"github.com/wortwerk/wortspiel/internal/puzzle"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveMessage is the frame exchanged over the live hangman socket.
// Clients send {"type":"guess","letter":"e"}; the server answers with
// state frames and a final result frame when the session ends.
type LiveMessage struct {
	Type    string                 `json:"type"`
	Letter  string                 `json:"letter,omitempty"`
	Masked  string                 `json:"masked,omitempty"`
	Guess   *models.GuessRecord    `json:"guess,omitempty"`
	Session *models.HangmanSession `json:"session,omitempty"`
	Score   int                    `json:"score,omitempty"`
	Perfect bool                   `json:"perfect,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// handleHangmanLive plays a stored hangman session over a websocket so the
// client gets the updated mask after every guess without polling.
func (s *Server) handleHangmanLive(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")
	if seed == "" {
		http.Error(w, "seed required", http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.HangmanBySeed(r.Context(), seed)
	if err != nil {
		if errors.Is(err, puzzle.ErrSessionNotFound) {
			http.Error(w, "no hangman session for this seed", http.StatusNotFound)
			return
		}
		slog.Error("failed to load hangman session", "seed", seed, "error", err)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	slog.Info("hangman websocket connected", "seed", seed)

	s.sendLiveMessage(conn, LiveMessage{
		Type:    "connected",
		Masked:  sess.MaskedWord(),
		Session: sess,
	})

	if sess.IsTerminal() {
		s.sendLiveResult(conn, sess)
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Debug("websocket read error", "seed", seed, "error", err)
			}
			break
		}

		var msg LiveMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			slog.Debug("invalid message format", "error", err)
			continue
		}
		if msg.Type != "guess" {
			continue
		}

		updated, record, err := s.sessions.Guess(r.Context(), seed, msg.Letter)
		if err != nil {
			switch {
			case errors.Is(err, puzzle.ErrInvalidGuess):
				s.sendLiveError(conn, "guess must be a single letter")
			case errors.Is(err, puzzle.ErrAlreadyGuessed):
				s.sendLiveError(conn, "letter already guessed")
			case errors.Is(err, puzzle.ErrSessionFinished):
				s.sendLiveError(conn, "session already finished")
			default:
				slog.Error("failed to apply guess", "seed", seed, "error", err)
				s.sendLiveError(conn, "failed to apply guess")
			}
			continue
		}

		s.sendLiveMessage(conn, LiveMessage{
			Type:    "state",
			Guess:   record,
			Masked:  updated.MaskedWord(),
			Session: updated,
		})

		if updated.IsTerminal() {
			s.sendLiveResult(conn, updated)
			break
		}
	}

	slog.Info("hangman websocket disconnected", "seed", seed)
}

func (s *Server) sendLiveResult(conn *websocket.Conn, sess *models.HangmanSession) {
	score, perfect := game.ScoreHangman(puzzle.Outcome(sess))
	s.sendLiveMessage(conn, LiveMessage{
		Type:    "finished",
		Masked:  sess.MaskedWord(),
		Session: sess,
		Score:   score,
		Perfect: perfect,
	})
}

func (s *Server) sendLiveMessage(conn *websocket.Conn, msg LiveMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal live message", "error", err)
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Debug("failed to send live message", "error", err)
		return err
	}
	return nil
}

func (s *Server) sendLiveError(conn *websocket.Conn, message string) {
	s.sendLiveMessage(conn, LiveMessage{
		Type:  "error",
		Error: message,
	})
}
