package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/PabloGalante/inner-mirror/internal/app/conversation"
	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

// maxEntryLength bounds a single message.
const maxEntryLength = 1000

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type sessionResponse struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	History   domain.History `json:"history"`
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

type sendMessageResponse struct {
	SessionID string         `json:"session_id"`
	Reply     string         `json:"reply"`
	Mood      string         `json:"mood,omitempty"`
	History   domain.History `json:"history"`
	Error     string         `json:"error,omitempty"`
}

type entriesResponse struct {
	Entries []domain.JournalEntry `json:"entries"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.createSession()
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.GetSession(domain.SessionID(chi.URLParam(r, "id")))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			notFound(w, "session not found")
			return
		}
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if msg := s.validateText(req.Text); msg != "" {
		badRequest(w, msg)
		return
	}

	resp, err := s.runTurn(r, domain.SessionID(chi.URLParam(r, "id")), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			notFound(w, "session not found")
			return
		}
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	var (
		entries []domain.JournalEntry
		err     error
	)
	if mood := r.URL.Query().Get("mood"); mood != "" {
		entries, err = s.journal.ByMood(r.Context(), domain.Mood(mood), limit)
	} else {
		entries, err = s.journal.Recent(r.Context(), limit)
	}
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entriesResponse{Entries: entries})
}

// ─────────────────────────────────────────────
// Conversation Helpers
// ─────────────────────────────────────────────

func (s *Server) createSession() (*domain.Session, error) {
	now := s.now().UTC()
	sess := &domain.Session{
		ID:        domain.SessionID(s.newID()),
		CreatedAt: now,
		UpdatedAt: now,
		History:   conversation.OpeningHistory(),
	}
	if err := s.sessions.CreateSession(sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// runTurn applies one turn to a stored session. Turns on the same session
// are serialised by the session store.
func (s *Server) runTurn(r *http.Request, id domain.SessionID, text string) (sendMessageResponse, error) {
	var res conversation.TurnResult
	sess, err := s.sessions.UpdateSession(id, func(h domain.History) domain.History {
		res = s.conv.Turn(r.Context(), h, text)
		return res.History
	})
	if err != nil {
		return sendMessageResponse{}, err
	}

	out := sendMessageResponse{
		SessionID: string(sess.ID),
		Reply:     res.Reply,
		Mood:      res.Mood.String(),
		History:   sess.History,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out, nil
}

// validateText returns a client-facing message, or "" when text is acceptable.
func (s *Server) validateText(text string) string {
	err := s.validate.Struct(sendMessageRequest{Text: strings.TrimSpace(text)})
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			return "text is required"
		case "max":
			return fmt.Sprintf("text must be at most %d characters", maxEntryLength)
		}
	}
	return "invalid text"
}

func toSessionResponse(sess *domain.Session) sessionResponse {
	history := sess.History
	if history == nil {
		history = domain.History{}
	}
	return sessionResponse{
		ID:        string(sess.ID),
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
		History:   history,
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	observability.LoggerFromContext(r.Context()).Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
