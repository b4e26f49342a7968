// Package assessment owns the durable assessment record and the
// orchestration that turns one finished session into one.
package assessment

import "time"

// Record categories, matching the product's historical values.
const (
	CategoryTechnical = "Technical"
	CategoryInterview = "AI Interview"
)

// EvaluationSnapshot is the per-question evaluation as persisted. The
// JSON tags are the storage shape; they mirror the wire contract of the
// evaluator so history readers see familiar field names.
type EvaluationSnapshot struct {
	Score                float64  `json:"score"`
	TechnicalAccuracy    float64  `json:"technicalAccuracy"`
	CommunicationClarity float64  `json:"communicationClarity"`
	Completeness         float64  `json:"completeness"`
	Feedback             string   `json:"detailedFeedback"`
	Strengths            []string `json:"keyStrengths"`
	ImprovementAreas     []string `json:"improvementAreas"`
	ModelAnswer          string   `json:"modelAnswer"`
}

// QuestionResult is one flattened per-question outcome. Quiz results
// carry Answer/IsCorrect/Explanation; interview results carry Kind and
// the evaluation snapshot.
type QuestionResult struct {
	Question    string              `json:"question"`
	Kind        string              `json:"type,omitempty"`
	Answer      string              `json:"answer,omitempty"`
	UserAnswer  string              `json:"userAnswer"`
	IsCorrect   bool                `json:"isCorrect"`
	Explanation string              `json:"explanation,omitempty"`
	Evaluation  *EvaluationSnapshot `json:"evaluation,omitempty"`
}

// Record is the durable output of one completed session. Created once,
// never mutated, append-only in storage ordered by CreatedAt.
type Record struct {
	ID      string
	OwnerID string

	// QuizScore is the overall percentage for either mode (the
	// historical column name survives from the product's first,
	// quiz-only release).
	QuizScore float64

	// TechnicalScore and CommunicationScore are set in interview mode only.
	TechnicalScore     *float64
	CommunicationScore *float64

	Category  string
	Questions []QuestionResult

	// Strengths and ImprovementAreas hold at most 3 entries each
	// (interview mode only).
	Strengths        []string
	ImprovementAreas []string

	// ImprovementTip is nil when tip generation produced nothing.
	ImprovementTip *string

	CreatedAt time.Time
}
