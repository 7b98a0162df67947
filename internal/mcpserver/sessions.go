package mcpserver

import (
	"sync"

	"github.com/google/uuid"

	"github.com/reviewgym/reviewgym/internal/session"
)

// liveSession is one learner's engine behind the MCP boundary. The MCP
// transport may deliver calls concurrently, but the engine is strictly
// sequential, so every tool call takes the session mutex first.
type liveSession struct {
	mu sync.Mutex

	id     string
	engine *session.Engine

	// challengeID is the ID of the challenge currently in play, kept for
	// round event logging.
	challengeID string
}

// registry maps MCP session IDs to live engines. Each session owns an
// independent engine; nothing is shared between learners.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*liveSession
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*liveSession)}
}

// create registers a new live session around the given engine and
// returns it with a fresh ID.
func (r *registry) create(build func(sessionID string) *session.Engine) *liveSession {
	id := uuid.NewString()
	ls := &liveSession{id: id, engine: build(id)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = ls
	return ls
}

// get returns the live session for id, or nil when unknown.
func (r *registry) get(id string) *liveSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}
