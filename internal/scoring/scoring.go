// Package scoring reduces per-question signals into summary
// percentages. Pure functions; the caller decides what to do with the
// numbers.
package scoring

import (
	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/questiongen"
	"github.com/prepdeck/prepdeck/internal/session"
)

// Quiz computes the quiz percentage: 100 * correct / N. An unanswered
// slot counts as wrong; in practice the caller scores only complete
// sessions. N == 0 fails with session.ErrEmptySession.
func Quiz(questions []questiongen.ChoiceQuestion, answers []string) (float64, error) {
	n := len(questions)
	if n == 0 {
		return 0, session.ErrEmptySession
	}

	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}

	return 100 * float64(correct) / float64(n), nil
}

// Summary holds the three independent interview means.
type Summary struct {
	Overall       float64
	Technical     float64
	Communication float64
}

// Interview computes the three means over the same N evaluations. A
// zero default for a field the backend omitted still participates in
// its mean; no filtering ever happens. N == 0 fails with
// session.ErrEmptySession.
func Interview(evals []evaluation.Evaluation) (Summary, error) {
	n := len(evals)
	if n == 0 {
		return Summary{}, session.ErrEmptySession
	}

	var overall, technical, communication float64
	for _, ev := range evals {
		overall += ev.Score
		technical += ev.TechnicalAccuracy
		communication += ev.CommunicationClarity
	}

	return Summary{
		Overall:       overall / float64(n),
		Technical:     technical / float64(n),
		Communication: communication / float64(n),
	}, nil
}
