package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/PabloGalante/inner-mirror/internal/app/tools"
	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

const (
	IntroMessage     = "Hello there!😊 I'm Mirror, here to reflect on your thoughts and provide insights."
	NameRequest      = "Can I ask how you'd like me to address you?"
	GreetingResponse = "Hello! It's nice to chat with you. How are you feeling today?"

	errorPrefix = "⚠️ Error: "
)

// An explicit ask like "video of X" is answered with the video alone. Other
// phrasings ("find me a video") still get a reflection first.
var directVideoPhrases = []string{"video of", "video about", "video showing"}

var (
	supportMoods    = []domain.Mood{domain.MoodStress, domain.MoodNegative, domain.MoodSadness}
	supportKeywords = []string{"help", "bad", "sad", "anxious", "worried"}
)

// Branch names the path a turn took; used for logs and metrics.
type Branch string

const (
	BranchVideo          Branch = "video"
	BranchGreeting       Branch = "greeting"
	BranchReflection     Branch = "reflection"
	BranchReflectionTool Branch = "reflection_tool"
	BranchRecommendation Branch = "reflection_recommendation"
	BranchError          Branch = "error"
)

type MoodClassifier interface {
	Infer(text string) domain.Mood
}

type ToolDispatcher interface {
	Dispatch(ctx context.Context, req tools.Request) tools.Result
}

type Reflector interface {
	Reflect(ctx context.Context, entry string, mood domain.Mood) (string, error)
}

type Service struct {
	classifier MoodClassifier
	dispatcher ToolDispatcher
	reflector  Reflector
	journal    domain.JournalStore
	metrics    *observability.Metrics
	now        func() time.Time
}

func NewService(
	classifier MoodClassifier,
	dispatcher ToolDispatcher,
	reflector Reflector,
	journal domain.JournalStore,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		classifier: classifier,
		dispatcher: dispatcher,
		reflector:  reflector,
		journal:    journal,
		metrics:    metrics,
		now:        time.Now,
	}
}

// TurnResult is the outcome of one turn. History is a new value; the
// history passed to Turn is left untouched. Err is set when the turn failed
// and the reply is the rendered error.
type TurnResult struct {
	History domain.History
	Mood    domain.Mood
	Reply   string
	Branch  Branch
	Err     error
}

// OpeningHistory is what a new conversation shows before the first message.
func OpeningHistory() domain.History {
	return domain.History{}.Append(
		domain.AssistantTurn(IntroMessage),
		domain.AssistantTurn(NameRequest),
	)
}

// Turn processes one user message. It never returns an error: failures are
// rendered into the transcript and reported in TurnResult.Err.
func (s *Service) Turn(ctx context.Context, history domain.History, text string) TurnResult {
	start := s.now()
	log := observability.LoggerFromContext(ctx)

	if history.Len() == 0 {
		history = OpeningHistory()
	}

	mood, reply, branch, err := s.respond(ctx, text)
	if err != nil {
		reply = errorPrefix + err.Error()
		branch = BranchError
		log.Error("turn failed", zap.String("mood", mood.String()), zap.Error(err))
	}

	s.record(branch)
	log.Info("turn completed",
		zap.String("mood", mood.String()),
		zap.String("branch", string(branch)),
		zap.Int64("elapsed_ms", s.now().Sub(start).Milliseconds()),
	)

	return TurnResult{
		History: history.Append(domain.UserTurn(text), domain.AssistantTurn(reply)),
		Mood:    mood,
		Reply:   reply,
		Branch:  branch,
		Err:     err,
	}
}

// respond runs classify → branch → persist. Side effects that already
// happened are not undone when a later step fails.
func (s *Service) respond(ctx context.Context, text string) (domain.Mood, string, Branch, error) {
	mood := s.classifier.Infer(text)
	lower := strings.ToLower(text)

	var toolResponse string
	if tools.DetectVideoRequest(text) {
		req := tools.ExtractToolRequest(text)
		result := s.dispatcher.Dispatch(ctx, req)
		toolResponse = tools.Format(result, req.Name())

		if containsAny(lower, directVideoPhrases) {
			return s.persisted(ctx, text, mood, toolResponse, BranchVideo)
		}
	}

	if mood == domain.MoodGreeting {
		return s.persisted(ctx, text, mood, GreetingResponse, BranchGreeting)
	}

	reflection, err := s.reflector.Reflect(ctx, text, mood)
	if err != nil {
		return mood, "", BranchError, err
	}

	switch {
	case toolResponse != "":
		return s.persisted(ctx, text, mood, reflection+"\n\n"+toolResponse, BranchReflectionTool)
	case isSupportMood(mood) && containsAny(lower, supportKeywords):
		req := tools.MoodRecommendation{Mood: mood}
		rec := tools.Format(s.dispatcher.Dispatch(ctx, req), req.Name())
		return s.persisted(ctx, text, mood, reflection+"\n\n"+rec, BranchRecommendation)
	default:
		return s.persisted(ctx, text, mood, reflection, BranchReflection)
	}
}

func (s *Service) persisted(ctx context.Context, text string, mood domain.Mood, reply string, branch Branch) (domain.Mood, string, Branch, error) {
	if err := s.journal.SaveEntry(ctx, text, mood); err != nil {
		return mood, "", BranchError, fmt.Errorf("saving journal entry: %w", err)
	}
	return mood, reply, branch, nil
}

func (s *Service) record(branch Branch) {
	if s.metrics == nil {
		return
	}
	s.metrics.Turns.WithLabelValues(string(branch)).Inc()
}

func isSupportMood(m domain.Mood) bool {
	for _, sm := range supportMoods {
		if m == sm {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
