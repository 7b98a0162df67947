package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/report"
	"github.com/reviewgym/reviewgym/internal/store"
)

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "List sealed rounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		full, _ := cmd.Flags().GetBool("report")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.EventRepo().RecentRounds(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No rounds recorded yet.")
			return nil
		}

		if full {
			rounds := make([]history.Round, len(records))
			for i, rec := range records {
				rounds[i] = rec.Round()
			}
			fmt.Print(report.Rounds(rounds))
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-5s  %-5s  %5s  %5s  %5s  %s\n",
			"Round", "Timestamp", "Level", "F1", "TP", "FP", "FN", "Categories")
		fmt.Println(strings.Repeat("─", 84))

		for _, rec := range records {
			card := rec.Scorecard
			if card == nil {
				continue
			}
			fmt.Printf("%-5d  %-19s  %-5d  %-5s  %5d  %5d  %5d  %s\n",
				rec.RoundIndex+1,
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				rec.Difficulty,
				fmt.Sprintf("%.0f%%", card.F1*100),
				card.TP(),
				card.FP(),
				card.FN(),
				strings.Join(rec.CategoryTags, ","),
			)
		}
		return nil
	},
}

func init() {
	roundsCmd.Flags().IntP("limit", "n", 20, "Number of rounds to show (0 = all)")
	roundsCmd.Flags().Bool("report", false, "Print full per-round markdown reports")
}
