package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/questiongen"
	"github.com/prepdeck/prepdeck/internal/scoring"
	"github.com/prepdeck/prepdeck/internal/session"
)

// maxAggregated caps the record-level strengths/improvement areas.
const maxAggregated = 3

// Store is the storage collaborator. One SaveAssessment call persists
// one record atomically; ListAssessments returns an owner's records
// ordered by creation time ascending.
type Store interface {
	SaveAssessment(ctx context.Context, rec *Record) error
	ListAssessments(ctx context.Context, ownerID string) ([]Record, error)
}

// PersistenceError reports a failed storage write. Unlike tip
// generation, this failure surfaces to the caller: the scores were
// computed but no record exists for later retrieval.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save assessment: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persister maps a complete session into a Record and commits it.
type Persister struct {
	store Store
	now   func() time.Time
}

// NewPersister creates a Persister writing through the given store.
func NewPersister(store Store) *Persister {
	return &Persister{store: store, now: time.Now}
}

// Persist builds the durable record for a complete session and writes
// it. Scores are always recomputed here from the per-question data,
// never accepted from the caller. On a storage failure the built record
// is returned alongside the PersistenceError, so the computed scores
// still reach the caller even though nothing was saved.
func (p *Persister) Persist(ctx context.Context, ownerID string, s *session.Session, tip *string) (*Record, error) {
	if s.State() != session.StateComplete {
		return nil, &session.InvalidTransitionError{Reason: "only a complete session can be persisted"}
	}

	var rec *Record
	var err error
	if s.Mode() == questiongen.ModeQuiz {
		rec, err = p.buildQuizRecord(ownerID, s, tip)
	} else {
		rec, err = p.buildInterviewRecord(ownerID, s, tip)
	}
	if err != nil {
		return nil, err
	}

	rec.ID = uuid.NewString()
	rec.CreatedAt = p.now().UTC()

	if err := p.store.SaveAssessment(ctx, rec); err != nil {
		return rec, &PersistenceError{Err: err}
	}

	return rec, nil
}

func (p *Persister) buildQuizRecord(ownerID string, s *session.Session, tip *string) (*Record, error) {
	questions := s.ChoiceQuestions()
	answers := s.Answers()

	score, err := scoring.Quiz(questions, answers)
	if err != nil {
		return nil, err
	}

	results := make([]QuestionResult, 0, len(questions))
	for i, q := range questions {
		results = append(results, QuestionResult{
			Question:    q.Text,
			Answer:      q.CorrectAnswer,
			UserAnswer:  answers[i],
			IsCorrect:   answers[i] == q.CorrectAnswer,
			Explanation: q.Explanation,
		})
	}

	return &Record{
		OwnerID:        ownerID,
		QuizScore:      score,
		Category:       CategoryTechnical,
		Questions:      results,
		ImprovementTip: tip,
	}, nil
}

func (p *Persister) buildInterviewRecord(ownerID string, s *session.Session, tip *string) (*Record, error) {
	questions := s.OpenQuestions()
	answers := s.Answers()
	evals := s.Evaluations()

	summary, err := scoring.Interview(evals)
	if err != nil {
		return nil, err
	}

	results := make([]QuestionResult, 0, len(questions))
	for i, q := range questions {
		snap := EvaluationSnapshot(evals[i])
		results = append(results, QuestionResult{
			Question:   q.Text,
			Kind:       string(q.Kind),
			UserAnswer: answers[i],
			Evaluation: &snap,
		})
	}

	technical := summary.Technical
	communication := summary.Communication

	return &Record{
		OwnerID:            ownerID,
		QuizScore:          summary.Overall,
		TechnicalScore:     &technical,
		CommunicationScore: &communication,
		Category:           CategoryInterview,
		Questions:          results,
		Strengths:          feedback.TopStrengths(evals, maxAggregated),
		ImprovementAreas:   feedback.TopImprovementAreas(evals, maxAggregated),
		ImprovementTip:     tip,
	}, nil
}
