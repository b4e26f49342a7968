package evaluation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/questiongen"
)

// Config holds configuration for the Evaluator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Grading runs at a low
// temperature so repeated evaluations of similar answers stay stable.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Evaluator grades open-ended answers through the generative backend.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Evaluator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// rawEvaluation is the wire shape of an evaluation response. Absent
// fields keep their zero values, which are exactly the documented
// defaults.
type rawEvaluation struct {
	Score                float64  `json:"score"`
	DetailedFeedback     string   `json:"detailedFeedback"`
	KeyStrengths         []string `json:"keyStrengths"`
	ImprovementAreas     []string `json:"improvementAreas"`
	ModelAnswer          string   `json:"modelAnswer"`
	TechnicalAccuracy    float64  `json:"technicalAccuracy"`
	CommunicationClarity float64  `json:"communicationClarity"`
	Completeness         float64  `json:"completeness"`
}

// Evaluate grades one answer to one open question. Only a failed
// backend call or an unparseable response is an error; missing fields
// in an otherwise valid response are defaulted.
func (e *Evaluator) Evaluate(ctx context.Context, q questiongen.OpenQuestion, answer string) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	userMsg, err := buildEvalMessage(q, answer)
	if err != nil {
		return nil, fmt.Errorf("build evaluation prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("answer evaluation failed: %w", err)
	}

	raw := llm.ExtractJSON(string(resp.Content))

	var parsed rawEvaluation
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("parse evaluation response: %w", err)}
	}

	ev := &Evaluation{
		Score:                parsed.Score,
		TechnicalAccuracy:    parsed.TechnicalAccuracy,
		CommunicationClarity: parsed.CommunicationClarity,
		Completeness:         parsed.Completeness,
		Feedback:             parsed.DetailedFeedback,
		Strengths:            parsed.KeyStrengths,
		ImprovementAreas:     parsed.ImprovementAreas,
		ModelAnswer:          parsed.ModelAnswer,
	}

	if ev.Feedback == "" {
		ev.Feedback = "No feedback provided"
	}
	if ev.ModelAnswer == "" {
		ev.ModelAnswer = "No model answer provided"
	}
	if ev.Strengths == nil {
		ev.Strengths = []string{}
	}
	if ev.ImprovementAreas == nil {
		ev.ImprovementAreas = []string{}
	}

	return ev, nil
}
