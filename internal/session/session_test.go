package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/questiongen"
)

func quizQuestions(n int) []questiongen.ChoiceQuestion {
	out := make([]questiongen.ChoiceQuestion, n)
	for i := range out {
		out[i] = questiongen.ChoiceQuestion{
			Text:          fmt.Sprintf("Q%d?", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "a",
		}
	}
	return out
}

func openQuestions(n int) []questiongen.OpenQuestion {
	out := make([]questiongen.OpenQuestion, n)
	for i := range out {
		out[i] = questiongen.OpenQuestion{
			Text: fmt.Sprintf("Tell me about %d.", i),
			Kind: questiongen.KindBehavioral,
		}
	}
	return out
}

func TestNewQuiz_Empty(t *testing.T) {
	_, err := NewQuiz("s1", nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestNewInterview_Empty(t *testing.T) {
	_, err := NewInterview("s1", nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestQuizLifecycle(t *testing.T) {
	s, err := NewQuiz("s1", quizQuestions(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.State() != StateCreated {
		t.Errorf("expected Created, got %v", s.State())
	}

	if err := s.Advance("a", nil); err != nil {
		t.Fatalf("advance 1: %v", err)
	}
	if s.State() != StateInProgress {
		t.Errorf("expected InProgress, got %v", s.State())
	}

	if err := s.Advance("b", nil); err != nil {
		t.Fatalf("advance 2: %v", err)
	}
	if err := s.Advance("a", nil); err != nil {
		t.Fatalf("advance 3: %v", err)
	}

	if s.State() != StateComplete {
		t.Errorf("expected Complete, got %v", s.State())
	}
	if got := s.Answers(); len(got) != 3 || got[1] != "b" {
		t.Errorf("unexpected answers: %v", got)
	}
}

func TestAdvance_AfterComplete(t *testing.T) {
	s, _ := NewQuiz("s1", quizQuestions(1))
	if err := s.Advance("a", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.Advance("b", nil)
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}

	// A rejected transition leaves the session untouched.
	if s.Current() != 1 || len(s.Answers()) != 1 {
		t.Errorf("session mutated by rejected transition: cursor=%d answers=%v", s.Current(), s.Answers())
	}
}

func TestAdvance_EmptyAnswer(t *testing.T) {
	s, _ := NewQuiz("s1", quizQuestions(1))

	for _, answer := range []string{"", "   ", "\n\t"} {
		err := s.Advance(answer, nil)
		var invalid *InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Errorf("answer %q: expected InvalidTransitionError, got %v", answer, err)
		}
	}
	if s.Current() != 0 {
		t.Errorf("cursor moved on rejected answers")
	}
}

func TestAdvance_AnswerNotAnOption(t *testing.T) {
	s, _ := NewQuiz("s1", quizQuestions(1))

	err := s.Advance("e", nil)
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if s.Current() != 0 {
		t.Error("cursor moved on rejected answer")
	}
}

func TestAdvance_QuizRejectsEvaluation(t *testing.T) {
	s, _ := NewQuiz("s1", quizQuestions(1))

	err := s.Advance("a", &evaluation.Evaluation{Score: 50})
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestAdvance_InterviewRequiresEvaluation(t *testing.T) {
	s, _ := NewInterview("s1", openQuestions(1))

	err := s.Advance("my answer", nil)
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestInterviewLifecycle(t *testing.T) {
	s, err := NewInterview("s1", openQuestions(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := s.CurrentOpen()
	if !ok || q.Text != "Tell me about 0." {
		t.Fatalf("unexpected current question: %+v ok=%v", q, ok)
	}

	ev := evaluation.Evaluation{Score: 80, TechnicalAccuracy: 70, CommunicationClarity: 90}
	if err := s.Advance("answer one", &ev); err != nil {
		t.Fatalf("advance 1: %v", err)
	}
	if err := s.Advance("answer two", &ev); err != nil {
		t.Fatalf("advance 2: %v", err)
	}

	if s.State() != StateComplete {
		t.Errorf("expected Complete, got %v", s.State())
	}
	if _, ok := s.CurrentOpen(); ok {
		t.Error("CurrentOpen should report no question when complete")
	}
	if got := s.Evaluations(); len(got) != 2 || got[0].Score != 80 {
		t.Errorf("unexpected evaluations: %v", got)
	}
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s, _ := NewQuiz("s1", quizQuestions(2))
	_ = s.Advance("a", nil)

	got := s.Answers()
	got[0] = "tampered"

	if s.Answers()[0] != "a" {
		t.Error("Answers exposed internal state")
	}
}
