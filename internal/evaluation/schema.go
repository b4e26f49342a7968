package evaluation

import "github.com/prepdeck/prepdeck/internal/llm"

// EvaluationSchema defines the JSON schema for evaluation responses.
// Nothing is required: every field has a documented default, and a
// missing field must never fail the session.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A structured evaluation of one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall answer quality",
			},
			"detailedFeedback": map[string]any{
				"type":        "string",
				"description": "Specific, constructive feedback",
			},
			"keyStrengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"improvementAreas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"modelAnswer": map[string]any{
				"type":        "string",
				"description": "A concise example of an excellent answer",
			},
			"technicalAccuracy": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
			"communicationClarity": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
			"completeness": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
		},
	},
}
