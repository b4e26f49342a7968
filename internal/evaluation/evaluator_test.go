package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/questiongen"
)

func testQuestion() questiongen.OpenQuestion {
	return questiongen.OpenQuestion{
		Text:               "Describe a production incident you handled.",
		Kind:               questiongen.KindBehavioral,
		EvaluationCriteria: []string{"ownership", "clarity"},
		KeyPoints:          []string{"root cause", "remediation"},
	}
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"score": 85,
		"detailedFeedback": "Clear narrative with a concrete root cause.",
		"keyStrengths": ["structured answer", "ownership"],
		"improvementAreas": ["quantify impact"],
		"modelAnswer": "Last year our payment queue backed up...",
		"technicalAccuracy": 80,
		"communicationClarity": 90,
		"completeness": 75
	}`)})
	ev := New(mock, DefaultConfig())

	got, err := ev.Evaluate(context.Background(), testQuestion(), "We had an outage and I led the response.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 85 {
		t.Errorf("expected score 85, got %v", got.Score)
	}
	if got.TechnicalAccuracy != 80 || got.CommunicationClarity != 90 || got.Completeness != 75 {
		t.Errorf("unexpected dimension scores: %+v", got)
	}
	if len(got.Strengths) != 2 {
		t.Errorf("expected 2 strengths, got %d", len(got.Strengths))
	}
}

func TestEvaluate_MissingFieldsDefaulted(t *testing.T) {
	// A technical-accuracy-free response is valid; absent fields take
	// their documented defaults rather than failing the evaluation.
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"score": 60}`)})
	ev := New(mock, DefaultConfig())

	got, err := ev.Evaluate(context.Background(), testQuestion(), "Short answer.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 60 {
		t.Errorf("expected score 60, got %v", got.Score)
	}
	if got.TechnicalAccuracy != 0 || got.CommunicationClarity != 0 || got.Completeness != 0 {
		t.Errorf("expected zero dimension defaults, got %+v", got)
	}
	if got.Feedback != "No feedback provided" {
		t.Errorf("unexpected feedback default: %q", got.Feedback)
	}
	if got.ModelAnswer != "No model answer provided" {
		t.Errorf("unexpected model answer default: %q", got.ModelAnswer)
	}
	if got.Strengths == nil || got.ImprovementAreas == nil {
		t.Error("expected empty, non-nil slices")
	}
}

func TestEvaluate_FencedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("```json\n{\"score\": 70}\n```")})
	ev := New(mock, DefaultConfig())

	got, err := ev.Evaluate(context.Background(), testQuestion(), "Answer.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 70 {
		t.Errorf("expected score 70, got %v", got.Score)
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("The answer was good, I'd say 80 out of 100.")})
	ev := New(mock, DefaultConfig())

	_, err := ev.Evaluate(context.Background(), testQuestion(), "Answer.")
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	ev := New(mock, DefaultConfig())

	_, err := ev.Evaluate(context.Background(), testQuestion(), "Answer.")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "answer evaluation failed") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestBuildEvalMessage(t *testing.T) {
	msg, err := buildEvalMessage(testQuestion(), "my answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		`Question: "Describe a production incident you handled."`,
		`Candidate's Answer: "my answer"`,
		"Question Type: behavioral",
		"Key Points Expected: root cause, remediation",
		"Evaluation Criteria: ownership, clarity",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
