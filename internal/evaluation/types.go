// Package evaluation grades one open-ended answer through the
// generative backend. Grading completeness is best-effort: optional
// fields the backend omits are defaulted, never failed on.
package evaluation

// Evaluation is the structured grading of a single answer.
// Numeric fields are 0-100; a field the backend omitted is 0.
type Evaluation struct {
	// Score is the overall answer quality.
	Score float64

	// TechnicalAccuracy is meaningful for technical questions only.
	TechnicalAccuracy float64

	CommunicationClarity float64
	Completeness         float64

	// Feedback is specific, constructive feedback on the answer.
	Feedback string

	// Strengths lists 2-3 specific strong points.
	Strengths []string

	// ImprovementAreas lists 2-3 specific areas to improve.
	ImprovementAreas []string

	// ModelAnswer is a concise example of an excellent answer.
	ModelAnswer string
}
