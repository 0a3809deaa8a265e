package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PabloGalante/inner-mirror/internal/config"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:           "mirror",
	Short:         "Inner Mirror reflective journaling agent",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	entriesCmd.Flags().String("mood", "", "only entries with this mood")
	entriesCmd.Flags().Int("limit", 5, "maximum number of entries")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var missing *config.MissingError
		if errors.As(err, &missing) {
			observability.Logger().Error("configuration incomplete", zap.Strings("missing", missing.Keys))
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig loads and validates configuration and installs the logger.
// The returned func flushes the logger.
func loadConfig() (*config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	flush := observability.Setup(observability.LogOptions{Level: cfg.LogLevel, File: cfg.LogFile})
	return cfg, flush, nil
}
