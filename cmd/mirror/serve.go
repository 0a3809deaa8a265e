package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "github.com/PabloGalante/inner-mirror/internal/adapters/http"
	memstore "github.com/PabloGalante/inner-mirror/internal/adapters/storage/memory"
	"github.com/PabloGalante/inner-mirror/internal/app/agentflow"
	"github.com/PabloGalante/inner-mirror/internal/app/conversation"
	journalapp "github.com/PabloGalante/inner-mirror/internal/app/journal"
	"github.com/PabloGalante/inner-mirror/internal/app/mood"
	"github.com/PabloGalante/inner-mirror/internal/app/tools"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chat web server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, flush, err := loadConfig()
	if err != nil {
		return err
	}
	defer flush()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := observability.Logger()
	metrics := observability.DefaultMetrics()

	journalStore, closer, err := newJournalStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	llmClient, err := newLLMClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing LLM client: %w", err)
	}
	videos, err := newVideoSearcher(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing video search: %w", err)
	}

	convSvc := conversation.NewService(
		mood.NewClassifier(nil),
		tools.NewDispatcher(videos, metrics),
		agentflow.NewReflectorAgent(llmClient),
		journalStore,
		metrics,
	)
	handler := httpadapter.NewServer(
		convSvc,
		journalapp.NewService(journalStore),
		memstore.NewSessionStore(),
		metrics,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("inner mirror listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
