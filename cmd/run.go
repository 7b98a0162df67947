package cmd

import (
	"fmt"
	"os"

	"github.com/reviewgym/reviewgym/internal/app"
	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/coach"
	"github.com/reviewgym/reviewgym/internal/config"
	"github.com/reviewgym/reviewgym/internal/llm"
	"github.com/reviewgym/reviewgym/internal/screens/drill"
	"github.com/reviewgym/reviewgym/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	settings, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: settings not loaded:", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()

	// The LLM stack is optional. Without credentials the builtin
	// challenge bank and rule-based coaching still work.
	var provider llm.Provider
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err = llm.NewProvider(ctx, cfg, events)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the builtin challenge bank.")
			provider = nil
		}
	}

	newProvider := func(sessionID string) challenge.Provider {
		if provider != nil {
			gen := challenge.New(provider, challenge.DefaultConfig())
			return challenge.WithRecording(gen, events, sessionID, "llm")
		}
		return challenge.WithRecording(challenge.NewBuiltin(), events, sessionID, "builtin")
	}

	coachSvc := coach.NewService(provider)
	defer coachSvc.Close()

	return app.Run(drill.Deps{
		Events:      events,
		Snapshots:   st.SnapshotRepo(),
		NewProvider: newProvider,
		Engine:      settings.SessionConfig(),
		Coach:       coachSvc,
	})
}
