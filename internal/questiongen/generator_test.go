package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/identity"
	"github.com/prepdeck/prepdeck/internal/llm"
)

func testProfile() identity.Profile {
	return identity.Profile{
		Domain:          "backend engineering",
		Skills:          []string{"Go", "PostgreSQL", "Kubernetes"},
		ExperienceYears: 4,
	}
}

func validQuizJSON(n int) json.RawMessage {
	var qs []string
	for i := 0; i < n; i++ {
		qs = append(qs, fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["A%d", "B%d", "C%d", "D%d"],
			"correctAnswer": "B%d",
			"explanation": "Because B."
		}`, i, i, i, i, i, i))
	}
	return json.RawMessage(`{"questions":[` + strings.Join(qs, ",") + `]}`)
}

func validInterviewJSON(n int) json.RawMessage {
	var qs []string
	for i := 0; i < n; i++ {
		kind := "technical"
		if i%2 == 1 {
			kind = "behavioral"
		}
		qs = append(qs, fmt.Sprintf(`{
			"question": "Tell me about %d.",
			"type": "%s",
			"evaluationCriteria": ["clarity", "depth"],
			"keyPoints": ["ownership"]
		}`, i, kind))
	}
	return json.RawMessage(`{"questions":[` + strings.Join(qs, ",") + `]}`)
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(10)})
	gen := New(mock, DefaultConfig())

	questions, err := gen.GenerateQuiz(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}
	if questions[0].Text != "Question 0?" {
		t.Errorf("unexpected text: %q", questions[0].Text)
	}
	if questions[0].CorrectAnswer != "B0" {
		t.Errorf("unexpected correct answer: %q", questions[0].CorrectAnswer)
	}
	if len(questions[0].Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(questions[0].Options))
	}
}

func TestGenerateQuiz_PromptReflectsProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(10)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.GenerateQuiz(context.Background(), testProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"backend engineering", "Go", "PostgreSQL"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateInterview_PromptIncludesExperience(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInterviewJSON(5)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.GenerateInterview(context.Background(), testProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "4 years of experience") {
		t.Errorf("prompt missing experience:\n%s", msg)
	}
}

func TestGenerateQuiz_FencedResponse(t *testing.T) {
	fenced := "```json\n" + string(validQuizJSON(10)) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	gen := New(mock, DefaultConfig())

	questions, err := gen.GenerateQuiz(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}
}

func TestGenerateQuiz_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "I could not generate questions, sorry."},
		{"missing questions key", `{"items":[]}`},
		{"wrong count", `{"questions":[{"question":"Q?","options":["a","b","c","d"],"correctAnswer":"a","explanation":""}]}`},
		{"three options", `{"questions":[` + tenQuestions(`{"question":"Q?","options":["a","b","c"],"correctAnswer":"a","explanation":""}`) + `]}`},
		{"duplicate options", `{"questions":[` + tenQuestions(`{"question":"Q?","options":["a","a","c","d"],"correctAnswer":"a","explanation":""}`) + `]}`},
		{"answer not an option", `{"questions":[` + tenQuestions(`{"question":"Q?","options":["a","b","c","d"],"correctAnswer":"e","explanation":""}`) + `]}`},
		{"empty question text", `{"questions":[` + tenQuestions(`{"question":"","options":["a","b","c","d"],"correctAnswer":"a","explanation":""}`) + `]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tc.content)})
			gen := New(mock, DefaultConfig())

			_, err := gen.GenerateQuiz(context.Background(), testProfile())
			var invalid *llm.ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func tenQuestions(q string) string {
	parts := make([]string, 10)
	for i := range parts {
		parts[i] = q
	}
	return strings.Join(parts, ",")
}

func TestGenerateQuiz_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuiz(context.Background(), testProfile())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "quiz generation failed") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestGenerateInterview(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInterviewJSON(5)})
	gen := New(mock, DefaultConfig())

	questions, err := gen.GenerateInterview(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	if questions[0].Kind != KindTechnical {
		t.Errorf("expected technical kind, got %q", questions[0].Kind)
	}
	if questions[1].Kind != KindBehavioral {
		t.Errorf("expected behavioral kind, got %q", questions[1].Kind)
	}
	if len(questions[0].EvaluationCriteria) != 2 {
		t.Errorf("expected 2 criteria, got %d", len(questions[0].EvaluationCriteria))
	}
}

func TestGenerateInterview_UnknownKind(t *testing.T) {
	content := `{"questions":[
		{"question":"Q1","type":"technical","evaluationCriteria":[],"keyPoints":[]},
		{"question":"Q2","type":"technical","evaluationCriteria":[],"keyPoints":[]},
		{"question":"Q3","type":"puzzle","evaluationCriteria":[],"keyPoints":[]},
		{"question":"Q4","type":"technical","evaluationCriteria":[],"keyPoints":[]},
		{"question":"Q5","type":"behavioral","evaluationCriteria":[],"keyPoints":[]}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateInterview(context.Background(), testProfile())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGenerateInterview_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateInterview(context.Background(), testProfile())
	var rate *llm.ErrRateLimit
	if !errors.As(err, &rate) {
		t.Fatalf("expected wrapped ErrRateLimit, got %v", err)
	}
}
