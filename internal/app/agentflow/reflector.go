package agentflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

// ErrEmptyReflection is returned when the model answers with blank text.
var ErrEmptyReflection = errors.New("language model returned an empty reflection")

// ReflectorAgent asks the language model for an empathetic reflection on one entry.
type ReflectorAgent struct {
	llm domain.LLMClient
}

func NewReflectorAgent(llm domain.LLMClient) *ReflectorAgent {
	return &ReflectorAgent{llm: llm}
}

func (a *ReflectorAgent) Name() string {
	return "reflector"
}

func (a *ReflectorAgent) Reflect(ctx context.Context, entry string, mood domain.Mood) (string, error) {
	log := observability.LoggerFromContext(ctx).With(zap.String("agent", a.Name()), zap.String("mood", mood.String()))
	start := time.Now()

	reply, err := a.llm.GenerateReply(ctx, BuildReflectionPrompt(entry, mood))
	if err != nil {
		log.Error("reflector agent error", zap.Error(err))
		return "", fmt.Errorf("generating reflection: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		log.Warn("reflector agent got empty reply")
		return "", ErrEmptyReflection
	}

	log.Info("reflector agent success", zap.Int64("elapsed_ms", time.Since(start).Milliseconds()))
	return reply, nil
}
