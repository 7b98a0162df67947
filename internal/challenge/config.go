package challenge

// Config controls the behavior of the LLM-backed provider.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated challenge. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. Challenges
	// carry a full code listing plus the answer key, so this runs much
	// larger than a chat reply.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorTitles is the maximum number of already-played challenge
	// titles to include in the prompt for deduplication.
	MaxPriorTitles int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ConstraintValidator{},
		},
		MaxTokens:      4096,
		Temperature:    0.8,
		MaxPriorTitles: 10,
	}
}
