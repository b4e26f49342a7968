package questiongen

// Config controls the behavior of the Generator.
type Config struct {
	// QuizCount is the number of multiple-choice questions per quiz.
	QuizCount int

	// InterviewCount is the number of open-ended questions per interview.
	InterviewCount int

	// MaxTokens is the token budget for the backend response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the product defaults: a 10-question quiz and a
// 5-question interview.
func DefaultConfig() Config {
	return Config{
		QuizCount:      10,
		InterviewCount: 5,
		MaxTokens:      4096,
		Temperature:    0.7,
	}
}
