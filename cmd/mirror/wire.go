package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/PabloGalante/inner-mirror/internal/adapters/llm"
	firestorestore "github.com/PabloGalante/inner-mirror/internal/adapters/storage/firestore"
	memstore "github.com/PabloGalante/inner-mirror/internal/adapters/storage/memory"
	sqlitestore "github.com/PabloGalante/inner-mirror/internal/adapters/storage/sqlite"
	"github.com/PabloGalante/inner-mirror/internal/adapters/video/youtube"
	"github.com/PabloGalante/inner-mirror/internal/config"
	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newJournalStore picks the journal backend. The closer releases it.
func newJournalStore(ctx context.Context, cfg *config.Config) (domain.JournalStore, io.Closer, error) {
	log := observability.Logger()

	switch cfg.StorageBackend {
	case config.StorageFirestore:
		log.Info("using firestore storage", zap.String("project", cfg.GCPProjectID))
		s, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing firestore store: %w", err)
		}
		return s, s, nil

	case config.StorageMemory:
		log.Info("using in-memory storage")
		return memstore.NewJournalStore(), nopCloser{}, nil

	default:
		log.Info("using sqlite storage", zap.String("path", cfg.DBPath))
		s, err := sqlitestore.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing sqlite store: %w", err)
		}
		return s, s, nil
	}
}

func newLLMClient(ctx context.Context, cfg *config.Config) (domain.LLMClient, error) {
	log := observability.Logger()

	switch cfg.LLMProvider {
	case config.ProviderMock:
		log.Info("using mock LLM client")
		return llm.NewMockLLM(), nil

	case config.ProviderGemini:
		log.Info("using gemini LLM client", zap.String("model", cfg.GeminiModel))
		return llm.NewGeminiClient(ctx, llm.GeminiConfig{
			Project:  cfg.GCPProjectID,
			Location: cfg.GCPLocation,
			Model:    cfg.GeminiModel,
		})

	default:
		log.Info("using openai LLM client", zap.String("model", cfg.OpenAIModel))
		return llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, nil)
	}
}

func newVideoSearcher(ctx context.Context, cfg *config.Config) (domain.VideoSearcher, error) {
	observability.WithFields(zap.String("component", "video")).Info("using youtube data api")
	return youtube.New(ctx, cfg.YouTubeAPIKey)
}
