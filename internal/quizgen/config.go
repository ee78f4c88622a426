package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MinCount and MaxCount bound the per-request item count.
	MinCount int
	MaxCount int

	// MaxAvoidThemes caps how many recently used themes go into the
	// passage prompt.
	MaxAvoidThemes int

	// DefaultWordCount is used for passage modes when the caller does
	// not set one.
	DefaultWordCount int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        4096,
		Temperature:      0.7,
		MinCount:         1,
		MaxCount:         10,
		MaxAvoidThemes:   5,
		DefaultWordCount: 150,
	}
}
