// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChallengeEventsColumns holds the columns for the "challenge_events" table.
	ChallengeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "finding_count", Type: field.TypeInt, Default: 0},
		{Name: "trap_count", Type: field.TypeInt, Default: 0},
	}
	// ChallengeEventsTable holds the schema information for the "challenge_events" table.
	ChallengeEventsTable = &schema.Table{
		Name:       "challenge_events",
		Columns:    ChallengeEventsColumns,
		PrimaryKey: []*schema.Column{ChallengeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[1]},
			},
			{
				Name:    "challengeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[2]},
			},
			{
				Name:    "challengeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[3]},
			},
			{
				Name:    "challengeevent_challenge_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[4]},
			},
			{
				Name:    "challengeevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// RoundEventsColumns holds the columns for the "round_events" table.
	RoundEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "round_index", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "category_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "true_positives", Type: field.TypeInt, Default: 0},
		{Name: "false_positives", Type: field.TypeInt, Default: 0},
		{Name: "false_negatives", Type: field.TypeInt, Default: 0},
		{Name: "trap_hits", Type: field.TypeInt, Default: 0},
		{Name: "precision", Type: field.TypeFloat64, Default: 0},
		{Name: "recall", Type: field.TypeFloat64, Default: 0},
		{Name: "f1", Type: field.TypeFloat64, Default: 0},
		{Name: "severity_accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "category_accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "reflection", Type: field.TypeString, Size: 2147483647},
		{Name: "scorecard", Type: field.TypeJSON, Nullable: true},
	}
	// RoundEventsTable holds the schema information for the "round_events" table.
	RoundEventsTable = &schema.Table{
		Name:       "round_events",
		Columns:    RoundEventsColumns,
		PrimaryKey: []*schema.Column{RoundEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roundevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[1]},
			},
			{
				Name:    "roundevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[2]},
			},
			{
				Name:    "roundevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[3]},
			},
			{
				Name:    "roundevent_round_index",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[5]},
			},
			{
				Name:    "roundevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "start_difficulty", Type: field.TypeInt, Default: 0},
		{Name: "rounds_played", Type: field.TypeInt, Default: 0},
		{Name: "final_difficulty", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChallengeEventsTable,
		LlmRequestEventsTable,
		RoundEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
