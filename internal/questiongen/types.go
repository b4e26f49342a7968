// Package questiongen builds generation prompts from a caller profile
// and turns the backend's responses into typed question sets for the
// two assessment modes.
package questiongen

// Mode selects the assessment flavor.
type Mode string

const (
	// ModeQuiz is the fixed-choice flow with objectively correct answers.
	ModeQuiz Mode = "quiz"

	// ModeInterview is the open-ended flow graded by the evaluator.
	ModeInterview Mode = "interview"
)

// ChoiceQuestion is one multiple-choice quiz item.
type ChoiceQuestion struct {
	// Text is the question prompt shown to the candidate.
	Text string

	// Options holds exactly 4 distinct answer options.
	Options []string

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string

	// Explanation is shown after the candidate answers.
	Explanation string
}

// QuestionKind classifies an open-ended interview question.
type QuestionKind string

const (
	KindBehavioral QuestionKind = "behavioral"
	KindTechnical  QuestionKind = "technical"
)

// OpenQuestion is one open-ended interview item.
type OpenQuestion struct {
	// Text is the question prompt shown to the candidate.
	Text string

	// Kind is behavioral or technical.
	Kind QuestionKind

	// EvaluationCriteria guide the evaluator's grading.
	EvaluationCriteria []string

	// KeyPoints are the points an excellent answer should cover.
	KeyPoints []string
}
