package store

import (
	"context"
	"time"

	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner state needed for a fast restore:
// the calibrated difficulty plus how many rounds back the full replay
// would have to go.
type SnapshotData struct {
	Version      int `json:"version"`
	Difficulty   int `json:"difficulty"`
	RoundsPlayed int `json:"rounds_played"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // start or end
	StartDifficulty int
	RoundsPlayed    int // end only
	FinalDifficulty int // end only
	DurationSecs    int // end only
}

// ChallengeEventData captures a served challenge, minus its ground truth.
type ChallengeEventData struct {
	SessionID    string
	ChallengeID  string
	Title        string
	Language     string
	Difficulty   int
	Source       string // llm or builtin
	Categories   []string
	FindingCount int
	TrapCount    int
}

// RoundEventData captures a sealed round. The scalar metric columns are
// derived from the scorecard on append.
type RoundEventData struct {
	SessionID    string
	ChallengeID  string
	RoundIndex   int
	Difficulty   int
	CategoryTags []string
	Reflection   string
	Scorecard    *scoring.Scorecard
}

// RoundRecord is a persisted round read back from the event log.
type RoundRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// Round converts the record into the engine's in-memory round form.
func (r *RoundRecord) Round() history.Round {
	return history.Round{
		Index:          r.RoundIndex,
		Difficulty:     r.Difficulty,
		CategoryTags:   r.CategoryTags,
		Scorecard:      r.Scorecard,
		ReflectionText: r.Reflection,
	}
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted LLM request read back from the event log.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendChallengeEvent records a served challenge.
	AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error

	// AppendRoundEvent records a sealed round.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentRounds returns the most recent limit rounds in play order
	// (oldest first). Limit 0 returns all rounds.
	RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error)

	// RoundCount returns the total number of sealed rounds.
	RoundCount(ctx context.Context) (int, error)

	// LastSequence returns the most recently assigned global sequence
	// number, or 0 when the log is empty. Used to stamp snapshots.
	LastSequence(ctx context.Context) (int64, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
