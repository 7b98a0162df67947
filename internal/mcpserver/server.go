// Package mcpserver exposes the session engine to agent hosts over the
// Model Context Protocol (stdio transport). This is the composition
// point only; all training logic lives in the engine packages. Stdout
// carries the protocol, so any diagnostics go to stderr.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/session"
	"github.com/reviewgym/reviewgym/internal/store"
)

// ProviderFactory builds the content provider for one session, so the
// host can wire per-session event recording around it.
type ProviderFactory func(sessionID string) challenge.Provider

// Deps carries everything the tools need.
type Deps struct {
	Events      store.EventRepo
	Snapshots   store.SnapshotRepo
	NewProvider ProviderFactory
	Engine      session.Config
	Version     string
}

// New creates the MCP server with the gym tools registered.
func New(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"reviewgym",
		deps.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	reg := newRegistry()

	start := &StartSessionTool{deps: deps, reg: reg}
	s.AddTool(start.Definition(), start.Handle)

	ch := &ChallengeTool{reg: reg}
	s.AddTool(ch.Definition(), ch.Handle)

	attempt := &AttemptTool{reg: reg}
	s.AddTool(attempt.Definition(), attempt.Handle)

	compare := &CompareTool{reg: reg}
	s.AddTool(compare.Definition(), compare.Handle)

	reflect := &ReflectTool{deps: deps, reg: reg}
	s.AddTool(reflect.Definition(), reflect.Handle)

	stats := &StatsTool{reg: reg}
	s.AddTool(stats.Definition(), stats.Handle)

	return s
}

// ServeStdio runs the server on stdin/stdout until the client hangs up.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const serverInstructions = `ReviewGym trains code security review through a four-phase cycle:
challenge, attempt, compare, reflect.

Start with gym_start_session, then loop:
1. gym_challenge returns a code artifact to review.
2. Review it and submit findings with gym_attempt.
3. gym_compare scores the submission against the hidden answer key.
4. gym_reflect seals the round; the reflection must say something
   specific about what went wrong (generic phrases are rejected).

Difficulty calibrates itself from recent results. The answer key is
never revealed before gym_compare.`
