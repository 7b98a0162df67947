package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reviewgym/reviewgym/internal/coverage"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/report"
	"github.com/reviewgym/reviewgym/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show category coverage rebuilt from the round log",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.EventRepo().RecentRounds(context.Background(), 0)
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No rounds recorded yet.")
			return nil
		}

		rounds := make([]history.Round, len(records))
		for i, rec := range records {
			rounds[i] = rec.Round()
		}

		tracker := coverage.New(coverage.DefaultConfig())
		stats := tracker.Snapshot(history.Seed(rounds))

		fmt.Print(report.Coverage(stats))
		return nil
	},
}
