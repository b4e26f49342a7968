package questiongen

import "github.com/prepdeck/prepdeck/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of multiple-choice technical screening questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the candidate",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 distinct answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A short explanation of the correct answer",
						},
					},
					"required": []any{"question", "options", "correctAnswer", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// InterviewSchema defines the JSON schema for interview generation responses.
var InterviewSchema = &llm.Schema{
	Name:        "interview-questions",
	Description: "A set of open-ended mock interview questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the candidate",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"behavioral", "technical"},
							"description": "The question category",
						},
						"evaluationCriteria": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Criteria the evaluator grades against",
						},
						"keyPoints": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Points an excellent answer covers",
						},
					},
					"required": []any{"question", "type", "evaluationCriteria", "keyPoints"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
