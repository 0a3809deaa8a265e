package httpadapter

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/PabloGalante/inner-mirror/internal/app/conversation"
	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

//go:embed static/index.html
var staticFS embed.FS

// TurnRunner is the conversation orchestrator as seen by the transport.
type TurnRunner interface {
	Turn(ctx context.Context, history domain.History, text string) conversation.TurnResult
}

// EntryReader is the journal read side.
type EntryReader interface {
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
	ByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error)
}

type Server struct {
	conv     TurnRunner
	journal  EntryReader
	sessions domain.SessionStore
	metrics  *observability.Metrics
	validate *validator.Validate
	upgrader websocket.Upgrader
	now      func() time.Time
	newID    func() string
}

func NewServer(conv TurnRunner, journal EntryReader, sessions domain.SessionStore, metrics *observability.Metrics) http.Handler {
	if metrics == nil {
		metrics = observability.DefaultMetrics()
	}
	s := &Server{
		conv:     conv,
		journal:  journal,
		sessions: sessions,
		metrics:  metrics,
		validate: validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(withRequestLogging(s.metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", s.metrics.Handler())
	r.Get("/ws", s.handleWebsocket)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleCreateSession)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Post("/sessions/{id}/messages", s.handleSendMessage)
		r.Get("/entries", s.handleListEntries)
	})

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
