package httpadapter

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

type wsRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// handleWebsocket carries the same exchange as POST /api/sessions/{id}/messages.
// A frame without session_id starts a new session.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		observability.LoggerFromContext(r.Context()).Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(16 * 1024)
	log := observability.LoggerFromContext(r.Context())

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("websocket read ended", zap.Error(err))
			}
			return
		}

		resp, err := s.wsTurn(r, req)
		if err != nil {
			resp = sendMessageResponse{SessionID: req.SessionID, Error: err.Error()}
		}
		if err := conn.WriteJSON(resp); err != nil {
			log.Debug("websocket write failed", zap.Error(err))
			return
		}
	}
}

func (s *Server) wsTurn(r *http.Request, req wsRequest) (sendMessageResponse, error) {
	if msg := s.validateText(req.Text); msg != "" {
		return sendMessageResponse{}, errors.New(msg)
	}

	id := domain.SessionID(req.SessionID)
	if id == "" {
		sess, err := s.createSession()
		if err != nil {
			return sendMessageResponse{}, err
		}
		id = sess.ID
	}
	return s.runTurn(r, id, req.Text)
}
