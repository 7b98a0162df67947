package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/config"
	"github.com/reviewgym/reviewgym/internal/llm"
	"github.com/reviewgym/reviewgym/internal/mcpserver"
	"github.com/reviewgym/reviewgym/internal/store"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the gym tools over MCP on stdin/stdout",
	Long:  "Runs a Model Context Protocol server so agent hosts can drive the challenge cycle. Stdout carries the protocol; diagnostics go to stderr.",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		var provider llm.Provider
		if cfg, ok := llm.DiscoverConfig(); ok {
			provider, err = llm.NewProvider(cmd.Context(), cfg, events)
			if err != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
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

		srv := mcpserver.New(mcpserver.Deps{
			Events:      events,
			Snapshots:   st.SnapshotRepo(),
			NewProvider: newProvider,
			Engine:      settings.SessionConfig(),
			Version:     version,
		})
		return mcpserver.ServeStdio(srv)
	},
}
