package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/identity"
	"github.com/prepdeck/prepdeck/internal/llm"
)

// Generator produces question sets through the generative backend.
// It performs no retries of its own; resilience lives in the provider
// middleware.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizPayload is the raw quiz response shape on the wire.
type quizPayload struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	} `json:"questions"`
}

// interviewPayload is the raw interview response shape.
type interviewPayload struct {
	Questions []struct {
		Question           string   `json:"question"`
		Type               string   `json:"type"`
		EvaluationCriteria []string `json:"evaluationCriteria"`
		KeyPoints          []string `json:"keyPoints"`
	} `json:"questions"`
}

// GenerateQuiz produces the multiple-choice question set for a profile.
// A failed backend call surfaces as-is (generation failure); a response
// that cannot be decoded after fence stripping surfaces as
// *llm.ErrInvalidResponse (malformed response).
func (g *Generator) GenerateQuiz(ctx context.Context, p identity.Profile) ([]ChoiceQuestion, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(p, g.config.QuizCount)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	return decodeQuiz(llm.ExtractJSON(string(resp.Content)), g.config.QuizCount)
}

// GenerateInterview produces the open-ended question set for a profile.
func (g *Generator) GenerateInterview(ctx context.Context, p identity.Profile) ([]OpenQuestion, error) {
	ctx = llm.WithPurpose(ctx, "interview-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: interviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInterviewMessage(p, g.config.InterviewCount)},
		},
		Schema:      InterviewSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("interview generation failed: %w", err)
	}

	return decodeInterview(llm.ExtractJSON(string(resp.Content)), g.config.InterviewCount)
}

// decodeQuiz is the strict decode step for quiz responses: required
// top-level shape fails loudly, per-question shape likewise.
func decodeQuiz(raw json.RawMessage, want int) ([]ChoiceQuestion, error) {
	var payload quizPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("parse quiz response: %w", err)}
	}
	if payload.Questions == nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf(`quiz response lacks "questions"`)}
	}
	if len(payload.Questions) != want {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("expected %d questions, got %d", want, len(payload.Questions))}
	}

	out := make([]ChoiceQuestion, 0, len(payload.Questions))
	for i, q := range payload.Questions {
		if q.Question == "" {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("question %d has no text", i)}
		}
		if len(q.Options) != 4 {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))}
		}
		seen := make(map[string]bool, 4)
		correctListed := false
		for _, opt := range q.Options {
			if seen[opt] {
				return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("question %d has duplicate option %q", i, opt)}
			}
			seen[opt] = true
			if opt == q.CorrectAnswer {
				correctListed = true
			}
		}
		if !correctListed {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("question %d: correct answer is not among the options", i)}
		}

		out = append(out, ChoiceQuestion{
			Text:          q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return out, nil
}

// decodeInterview is the strict decode step for interview responses.
func decodeInterview(raw json.RawMessage, want int) ([]OpenQuestion, error) {
	var payload interviewPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("parse interview response: %w", err)}
	}
	if payload.Questions == nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf(`interview response lacks "questions"`)}
	}
	if len(payload.Questions) != want {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("expected %d questions, got %d", want, len(payload.Questions))}
	}

	out := make([]OpenQuestion, 0, len(payload.Questions))
	for i, q := range payload.Questions {
		if q.Question == "" {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("question %d has no text", i)}
		}
		kind := QuestionKind(q.Type)
		if kind != KindBehavioral && kind != KindTechnical {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("question %d has unknown type %q", i, q.Type)}
		}

		out = append(out, OpenQuestion{
			Text:               q.Question,
			Kind:               kind,
			EvaluationCriteria: q.EvaluationCriteria,
			KeyPoints:          q.KeyPoints,
		})
	}

	return out, nil
}
