package assessment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/identity"
	"github.com/prepdeck/prepdeck/internal/questiongen"
	"github.com/prepdeck/prepdeck/internal/session"
)

// Attempt is one caller's live session plus the resolved identity it
// belongs to. It exists only in memory; abandoning it is the only
// cancellation there is.
type Attempt struct {
	OwnerID string
	Profile identity.Profile
	Session *session.Session
}

// Service orchestrates the assessment flow: identity → generation →
// session → per-answer evaluation → scoring → tip → persistence. All
// steps within one attempt are strictly sequential.
type Service struct {
	ids       identity.Resolver
	generator *questiongen.Generator
	evaluator *evaluation.Evaluator
	tips      *feedback.Synthesizer
	persister *Persister
	store     Store
}

// NewService wires the collaborators together.
func NewService(ids identity.Resolver, gen *questiongen.Generator, eval *evaluation.Evaluator, tips *feedback.Synthesizer, store Store) *Service {
	return &Service{
		ids:       ids,
		generator: gen,
		evaluator: eval,
		tips:      tips,
		persister: NewPersister(store),
		store:     store,
	}
}

// StartQuiz resolves the caller, generates the quiz question set and
// opens a session. Identity failures surface before any generation
// work; generation failures abort session creation entirely.
func (s *Service) StartQuiz(ctx context.Context, token string) (*Attempt, error) {
	id, err := s.ids.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	questions, err := s.generator.GenerateQuiz(ctx, id.Profile)
	if err != nil {
		return nil, err
	}

	sess, err := session.NewQuiz(uuid.NewString(), questions)
	if err != nil {
		return nil, err
	}

	return &Attempt{OwnerID: id.OwnerID, Profile: id.Profile, Session: sess}, nil
}

// StartInterview resolves the caller, generates the interview question
// set and opens a session.
func (s *Service) StartInterview(ctx context.Context, token string) (*Attempt, error) {
	id, err := s.ids.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	questions, err := s.generator.GenerateInterview(ctx, id.Profile)
	if err != nil {
		return nil, err
	}

	sess, err := session.NewInterview(uuid.NewString(), questions)
	if err != nil {
		return nil, err
	}

	return &Attempt{OwnerID: id.OwnerID, Profile: id.Profile, Session: sess}, nil
}

// SubmitQuizAnswer records one quiz answer and advances the session.
func (s *Service) SubmitQuizAnswer(a *Attempt, answer string) error {
	return a.Session.Advance(answer, nil)
}

// SubmitInterviewAnswer evaluates one answer and, on success, records
// it and advances the session. An evaluation failure leaves the session
// exactly where it was so the caller can retry this question.
func (s *Service) SubmitInterviewAnswer(ctx context.Context, a *Attempt, answer string) (*evaluation.Evaluation, error) {
	q, ok := a.Session.CurrentOpen()
	if !ok {
		return nil, &session.InvalidTransitionError{Reason: "session is already complete"}
	}
	if strings.TrimSpace(answer) == "" {
		return nil, &session.InvalidTransitionError{Reason: "answer must not be empty"}
	}

	ev, err := s.evaluator.Evaluate(ctx, q, answer)
	if err != nil {
		return nil, err
	}

	if err := a.Session.Advance(answer, ev); err != nil {
		return nil, err
	}

	return ev, nil
}

// Finish scores the complete session, attaches the best-effort tip and
// persists the record. Tip failures never surface. A persistence
// failure surfaces together with the built record, so the caller can
// still show the computed scores.
func (s *Service) Finish(ctx context.Context, a *Attempt) (*Record, error) {
	if a.Session.State() != session.StateComplete {
		return nil, &session.InvalidTransitionError{Reason: "session is not complete"}
	}

	var tip *string
	if a.Session.Mode() == questiongen.ModeQuiz {
		if t, ok := s.tips.QuizTip(ctx, a.Profile.Domain, a.Session.ChoiceQuestions(), a.Session.Answers()); ok {
			tip = &t
		}
	} else {
		t := feedback.InterviewTip(a.Session.Evaluations())
		tip = &t
	}

	return s.persister.Persist(ctx, a.OwnerID, a.Session, tip)
}

// History lists the caller's past assessments, oldest first.
func (s *Service) History(ctx context.Context, token string) ([]Record, error) {
	id, err := s.ids.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.store.ListAssessments(ctx, id.OwnerID)
}
