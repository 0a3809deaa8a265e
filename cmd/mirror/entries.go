package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	journalapp "github.com/PabloGalante/inner-mirror/internal/app/journal"
	"github.com/PabloGalante/inner-mirror/internal/config"
	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Print recent journal entries",
	RunE:  runEntries,
}

// runEntries only needs storage, so it skips the full validation serve does.
func runEntries(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flush := observability.Setup(observability.LogOptions{Level: "warn", File: cfg.LogFile})
	defer flush()

	moodFlag, _ := cmd.Flags().GetString("mood")
	limit, _ := cmd.Flags().GetInt("limit")

	store, closer, err := newJournalStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	svc := journalapp.NewService(store)
	var entries []domain.JournalEntry
	if moodFlag != "" {
		entries, err = svc.ByMood(cmd.Context(), domain.Mood(moodFlag), limit)
	} else {
		entries, err = svc.Recent(cmd.Context(), limit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No journal entries yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  [%s]  %s\n", e.Timestamp.Local().Format(time.DateTime), e.Mood, e.Text)
	}
	return nil
}
