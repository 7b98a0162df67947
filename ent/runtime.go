// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reviewgym/reviewgym/ent/challengeevent"
	"github.com/reviewgym/reviewgym/ent/llmrequestevent"
	"github.com/reviewgym/reviewgym/ent/roundevent"
	"github.com/reviewgym/reviewgym/ent/schema"
	"github.com/reviewgym/reviewgym/ent/sessionevent"
	"github.com/reviewgym/reviewgym/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengeeventMixin := schema.ChallengeEvent{}.Mixin()
	challengeeventMixinFields0 := challengeeventMixin[0].Fields()
	_ = challengeeventMixinFields0
	challengeeventFields := schema.ChallengeEvent{}.Fields()
	_ = challengeeventFields
	// challengeeventDescTimestamp is the schema descriptor for timestamp field.
	challengeeventDescTimestamp := challengeeventMixinFields0[1].Descriptor()
	// challengeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	challengeevent.DefaultTimestamp = challengeeventDescTimestamp.Default.(func() time.Time)
	// challengeeventDescSessionID is the schema descriptor for session_id field.
	challengeeventDescSessionID := challengeeventFields[0].Descriptor()
	// challengeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	challengeevent.SessionIDValidator = challengeeventDescSessionID.Validators[0].(func(string) error)
	// challengeeventDescChallengeID is the schema descriptor for challenge_id field.
	challengeeventDescChallengeID := challengeeventFields[1].Descriptor()
	// challengeevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	challengeevent.ChallengeIDValidator = challengeeventDescChallengeID.Validators[0].(func(string) error)
	// challengeeventDescTitle is the schema descriptor for title field.
	challengeeventDescTitle := challengeeventFields[2].Descriptor()
	// challengeevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	challengeevent.TitleValidator = challengeeventDescTitle.Validators[0].(func(string) error)
	// challengeeventDescLanguage is the schema descriptor for language field.
	challengeeventDescLanguage := challengeeventFields[3].Descriptor()
	// challengeevent.DefaultLanguage holds the default value on creation for the language field.
	challengeevent.DefaultLanguage = challengeeventDescLanguage.Default.(string)
	// challengeeventDescSource is the schema descriptor for source field.
	challengeeventDescSource := challengeeventFields[5].Descriptor()
	// challengeevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	challengeevent.SourceValidator = challengeeventDescSource.Validators[0].(func(string) error)
	// challengeeventDescFindingCount is the schema descriptor for finding_count field.
	challengeeventDescFindingCount := challengeeventFields[7].Descriptor()
	// challengeevent.DefaultFindingCount holds the default value on creation for the finding_count field.
	challengeevent.DefaultFindingCount = challengeeventDescFindingCount.Default.(int)
	// challengeeventDescTrapCount is the schema descriptor for trap_count field.
	challengeeventDescTrapCount := challengeeventFields[8].Descriptor()
	// challengeevent.DefaultTrapCount holds the default value on creation for the trap_count field.
	challengeevent.DefaultTrapCount = challengeeventDescTrapCount.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescSessionID is the schema descriptor for session_id field.
	roundeventDescSessionID := roundeventFields[0].Descriptor()
	// roundevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	roundevent.SessionIDValidator = roundeventDescSessionID.Validators[0].(func(string) error)
	// roundeventDescChallengeID is the schema descriptor for challenge_id field.
	roundeventDescChallengeID := roundeventFields[1].Descriptor()
	// roundevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	roundevent.ChallengeIDValidator = roundeventDescChallengeID.Validators[0].(func(string) error)
	// roundeventDescTruePositives is the schema descriptor for true_positives field.
	roundeventDescTruePositives := roundeventFields[5].Descriptor()
	// roundevent.DefaultTruePositives holds the default value on creation for the true_positives field.
	roundevent.DefaultTruePositives = roundeventDescTruePositives.Default.(int)
	// roundeventDescFalsePositives is the schema descriptor for false_positives field.
	roundeventDescFalsePositives := roundeventFields[6].Descriptor()
	// roundevent.DefaultFalsePositives holds the default value on creation for the false_positives field.
	roundevent.DefaultFalsePositives = roundeventDescFalsePositives.Default.(int)
	// roundeventDescFalseNegatives is the schema descriptor for false_negatives field.
	roundeventDescFalseNegatives := roundeventFields[7].Descriptor()
	// roundevent.DefaultFalseNegatives holds the default value on creation for the false_negatives field.
	roundevent.DefaultFalseNegatives = roundeventDescFalseNegatives.Default.(int)
	// roundeventDescTrapHits is the schema descriptor for trap_hits field.
	roundeventDescTrapHits := roundeventFields[8].Descriptor()
	// roundevent.DefaultTrapHits holds the default value on creation for the trap_hits field.
	roundevent.DefaultTrapHits = roundeventDescTrapHits.Default.(int)
	// roundeventDescPrecision is the schema descriptor for precision field.
	roundeventDescPrecision := roundeventFields[9].Descriptor()
	// roundevent.DefaultPrecision holds the default value on creation for the precision field.
	roundevent.DefaultPrecision = roundeventDescPrecision.Default.(float64)
	// roundeventDescRecall is the schema descriptor for recall field.
	roundeventDescRecall := roundeventFields[10].Descriptor()
	// roundevent.DefaultRecall holds the default value on creation for the recall field.
	roundevent.DefaultRecall = roundeventDescRecall.Default.(float64)
	// roundeventDescF1 is the schema descriptor for f1 field.
	roundeventDescF1 := roundeventFields[11].Descriptor()
	// roundevent.DefaultF1 holds the default value on creation for the f1 field.
	roundevent.DefaultF1 = roundeventDescF1.Default.(float64)
	// roundeventDescSeverityAccuracy is the schema descriptor for severity_accuracy field.
	roundeventDescSeverityAccuracy := roundeventFields[12].Descriptor()
	// roundevent.DefaultSeverityAccuracy holds the default value on creation for the severity_accuracy field.
	roundevent.DefaultSeverityAccuracy = roundeventDescSeverityAccuracy.Default.(float64)
	// roundeventDescCategoryAccuracy is the schema descriptor for category_accuracy field.
	roundeventDescCategoryAccuracy := roundeventFields[13].Descriptor()
	// roundevent.DefaultCategoryAccuracy holds the default value on creation for the category_accuracy field.
	roundevent.DefaultCategoryAccuracy = roundeventDescCategoryAccuracy.Default.(float64)
	// roundeventDescReflection is the schema descriptor for reflection field.
	roundeventDescReflection := roundeventFields[14].Descriptor()
	// roundevent.ReflectionValidator is a validator for the "reflection" field. It is called by the builders before save.
	roundevent.ReflectionValidator = roundeventDescReflection.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescStartDifficulty is the schema descriptor for start_difficulty field.
	sessioneventDescStartDifficulty := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultStartDifficulty holds the default value on creation for the start_difficulty field.
	sessionevent.DefaultStartDifficulty = sessioneventDescStartDifficulty.Default.(int)
	// sessioneventDescRoundsPlayed is the schema descriptor for rounds_played field.
	sessioneventDescRoundsPlayed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultRoundsPlayed holds the default value on creation for the rounds_played field.
	sessionevent.DefaultRoundsPlayed = sessioneventDescRoundsPlayed.Default.(int)
	// sessioneventDescFinalDifficulty is the schema descriptor for final_difficulty field.
	sessioneventDescFinalDifficulty := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultFinalDifficulty holds the default value on creation for the final_difficulty field.
	sessionevent.DefaultFinalDifficulty = sessioneventDescFinalDifficulty.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
