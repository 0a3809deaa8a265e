package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/inner-mirror/internal/config"
	"github.com/PabloGalante/inner-mirror/internal/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and reach the language-model and video APIs",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		var missing *config.MissingError
		if errors.As(err, &missing) {
			for _, k := range missing.Keys {
				fmt.Fprintf(out, "❌ %s is not set\n", k)
			}
		}
		return err
	}
	fmt.Fprintf(out, "✅ configuration complete (llm=%s, storage=%s)\n", cfg.LLMProvider, cfg.StorageBackend)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	var failed bool

	llmClient, err := newLLMClient(ctx, cfg)
	if err == nil {
		_, err = llmClient.GenerateReply(ctx, domain.Prompt{
			System: "You are a connectivity check.",
			User:   "Reply with the single word: ok",
		})
	}
	failed = report(cmd, "language model", err) || failed

	videos, err := newVideoSearcher(ctx, cfg)
	if err == nil {
		_, err = videos.Search(ctx, "mindfulness", 1)
	}
	failed = report(cmd, "video search", err) || failed

	if failed {
		return errors.New("connectivity check failed")
	}
	return nil
}

// report prints the probe outcome and returns true on failure.
func report(cmd *cobra.Command, name string, err error) bool {
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "❌ %s: %v\n", name, err)
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s reachable\n", name)
	return false
}
