// Package session tracks one in-progress assessment attempt as an
// explicit state machine: Created → InProgress → Complete, driven by a
// forward-only cursor. The cursor, not convention, enforces that a
// later question's slot is never written before an earlier one
// completes and that nothing changes after completion.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/questiongen"
)

// State is the session lifecycle state.
type State int

const (
	// StateCreated means questions are fixed and nothing is answered yet.
	StateCreated State = iota

	// StateInProgress means at least one answer is recorded.
	StateInProgress

	// StateComplete means every question is answered. Terminal: the
	// session is immutable from here on.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInProgress:
		return "in-progress"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrEmptySession is returned when an operation needs at least one
// question and the session has none.
var ErrEmptySession = errors.New("session has no questions")

// InvalidTransitionError reports an illegal Advance call. The session
// state is unchanged when it is returned.
type InvalidTransitionError struct {
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return "invalid session transition: " + e.Reason
}

// Session is one assessment attempt. It lives in memory for the
// duration of the attempt and is discarded once mapped to a durable
// record; it is not safe for concurrent use (one caller drives one
// session, per the product's flow).
type Session struct {
	id   string
	mode questiongen.Mode

	choice []questiongen.ChoiceQuestion
	open   []questiongen.OpenQuestion

	// answers[i] and evaluations[i] exist exactly for i < current.
	answers     []string
	evaluations []evaluation.Evaluation
	current     int
}

// NewQuiz creates a quiz session over a fixed question list.
func NewQuiz(id string, questions []questiongen.ChoiceQuestion) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}
	return &Session{
		id:      id,
		mode:    questiongen.ModeQuiz,
		choice:  questions,
		answers: make([]string, 0, len(questions)),
	}, nil
}

// NewInterview creates an interview session over a fixed question list.
func NewInterview(id string, questions []questiongen.OpenQuestion) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}
	return &Session{
		id:          id,
		mode:        questiongen.ModeInterview,
		open:        questions,
		answers:     make([]string, 0, len(questions)),
		evaluations: make([]evaluation.Evaluation, 0, len(questions)),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the session mode.
func (s *Session) Mode() questiongen.Mode { return s.mode }

// Len returns the fixed question count N.
func (s *Session) Len() int {
	if s.mode == questiongen.ModeQuiz {
		return len(s.choice)
	}
	return len(s.open)
}

// Current returns the cursor: the index of the next unanswered
// question, in [0, N]. Current() == Len() means Complete.
func (s *Session) Current() int { return s.current }

// State derives the lifecycle state from the cursor.
func (s *Session) State() State {
	switch {
	case s.current == 0:
		return StateCreated
	case s.current < s.Len():
		return StateInProgress
	default:
		return StateComplete
	}
}

// ChoiceQuestions returns the quiz question list (nil in interview mode).
func (s *Session) ChoiceQuestions() []questiongen.ChoiceQuestion { return s.choice }

// OpenQuestions returns the interview question list (nil in quiz mode).
func (s *Session) OpenQuestions() []questiongen.OpenQuestion { return s.open }

// CurrentChoice returns the quiz question under the cursor.
func (s *Session) CurrentChoice() (questiongen.ChoiceQuestion, bool) {
	if s.mode != questiongen.ModeQuiz || s.current >= len(s.choice) {
		return questiongen.ChoiceQuestion{}, false
	}
	return s.choice[s.current], true
}

// CurrentOpen returns the interview question under the cursor.
func (s *Session) CurrentOpen() (questiongen.OpenQuestion, bool) {
	if s.mode != questiongen.ModeInterview || s.current >= len(s.open) {
		return questiongen.OpenQuestion{}, false
	}
	return s.open[s.current], true
}

// Answers returns the recorded answers, one per completed question.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Evaluations returns the recorded evaluations (interview mode), one
// per completed question.
func (s *Session) Evaluations() []evaluation.Evaluation {
	out := make([]evaluation.Evaluation, len(s.evaluations))
	copy(out, s.evaluations)
	return out
}

// Advance records the answer (and, in interview mode, its evaluation)
// for the question under the cursor, then moves the cursor forward.
// There is no backward transition. On error the session is unchanged.
func (s *Session) Advance(answer string, eval *evaluation.Evaluation) error {
	if s.State() == StateComplete {
		return &InvalidTransitionError{Reason: "session is already complete"}
	}
	if strings.TrimSpace(answer) == "" {
		return &InvalidTransitionError{Reason: "answer must not be empty"}
	}

	switch s.mode {
	case questiongen.ModeQuiz:
		if eval != nil {
			return &InvalidTransitionError{Reason: "quiz answers carry no evaluation"}
		}
		q := s.choice[s.current]
		if !containsOption(q.Options, answer) {
			return &InvalidTransitionError{Reason: "answer is not one of the question's options"}
		}
		s.answers = append(s.answers, answer)

	case questiongen.ModeInterview:
		if eval == nil {
			return &InvalidTransitionError{Reason: "interview answers require an evaluation"}
		}
		s.answers = append(s.answers, answer)
		s.evaluations = append(s.evaluations, *eval)
	}

	s.current++
	return nil
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
