package questiongen

// Config controls the behavior of the Fetcher.
type Config struct {
	// Validators is the ordered list of validators run on every question
	// in a batch. They execute in order; the first failure rejects the
	// whole batch.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
