// Package feedback produces the best-effort improvement tip attached to
// a finished assessment. Nothing in here is allowed to abort the flow:
// a failed backend call degrades to no tip (quiz) or a generic
// encouragement (interview).
package feedback

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/questiongen"
)

// GenericEncouragement is the interview fallback when no evaluation
// carries any feedback to aggregate.
const GenericEncouragement = "Keep practicing with regular mock interviews. Structured answers backed by concrete examples will lift every score."

// Synthesizer builds improvement tips.
type Synthesizer struct {
	provider  llm.Provider
	maxTokens int
}

// New creates a Synthesizer with the given provider.
func New(provider llm.Provider) *Synthesizer {
	return &Synthesizer{provider: provider, maxTokens: 256}
}

// QuizTip builds a short encouraging tip from the wrong answers of a
// finished quiz. It returns ("", false) when every answer was correct
// (nothing to improve, deliberately no tip) and when the backend call
// fails (the failure is logged and swallowed).
func (s *Synthesizer) QuizTip(ctx context.Context, domain string, questions []questiongen.ChoiceQuestion, answers []string) (string, bool) {
	wrong := wrongAnswers(questions, answers)
	if len(wrong) == 0 {
		return "", false
	}

	ctx = llm.WithPurpose(ctx, "quiz-tip")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTipMessage(domain, wrong)},
		},
		MaxTokens:   s.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: improvement tip generation failed: %v\n", err)
		return "", false
	}

	tip := strings.TrimSpace(string(resp.Content))
	if tip == "" {
		return "", false
	}
	return tip, true
}

// wrongTriple is one missed question for the tip prompt.
type wrongTriple struct {
	question      string
	correctAnswer string
	userAnswer    string
}

func wrongAnswers(questions []questiongen.ChoiceQuestion, answers []string) []wrongTriple {
	var wrong []wrongTriple
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		if answer != q.CorrectAnswer {
			wrong = append(wrong, wrongTriple{
				question:      q.Text,
				correctAnswer: q.CorrectAnswer,
				userAnswer:    answer,
			})
		}
	}
	return wrong
}

func buildTipMessage(domain string, wrong []wrongTriple) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user got the following %s technical interview questions wrong:\n\n", domain)
	for i, w := range wrong {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Question: %q\nCorrect Answer: %q\nUser Answer: %q", w.question, w.correctAnswer, w.userAnswer)
	}
	b.WriteString("\n\nBased on these mistakes, provide a concise, specific improvement tip.\n")
	b.WriteString("Focus on the knowledge gaps revealed by these wrong answers.\n")
	b.WriteString("Keep the response under 2 sentences and make it encouraging.\n")
	b.WriteString("Don't explicitly mention the mistakes, instead focus on what to learn/practice.")

	return b.String()
}

// InterviewTip synthesizes a one-line tip from the evaluations, naming
// the most frequent strength and the most frequent improvement area.
// Purely local; no backend call. Falls back to GenericEncouragement
// when the evaluations carry no feedback at all.
func InterviewTip(evals []evaluation.Evaluation) string {
	strengths := rankByFrequency(flattenStrengths(evals))
	areas := rankByFrequency(flattenImprovementAreas(evals))

	if len(strengths) == 0 && len(areas) == 0 {
		return GenericEncouragement
	}

	topStrength := "communication"
	if len(strengths) > 0 {
		topStrength = strengths[0]
	}
	topArea := "specific examples"
	if len(areas) > 0 {
		topArea = areas[0]
	}

	return fmt.Sprintf("Strong in %s. Focus on improving %s for better responses.", topStrength, topArea)
}

// TopStrengths returns the up-to-max most frequent strengths across the
// evaluations, ties broken by first appearance.
func TopStrengths(evals []evaluation.Evaluation, max int) []string {
	return capped(rankByFrequency(flattenStrengths(evals)), max)
}

// TopImprovementAreas returns the up-to-max most frequent improvement
// areas across the evaluations.
func TopImprovementAreas(evals []evaluation.Evaluation, max int) []string {
	return capped(rankByFrequency(flattenImprovementAreas(evals)), max)
}

func flattenStrengths(evals []evaluation.Evaluation) []string {
	var out []string
	for _, ev := range evals {
		out = append(out, ev.Strengths...)
	}
	return out
}

func flattenImprovementAreas(evals []evaluation.Evaluation) []string {
	var out []string
	for _, ev := range evals {
		out = append(out, ev.ImprovementAreas...)
	}
	return out
}

// rankByFrequency returns the distinct items ordered by descending
// count, ties broken by first-seen order.
func rankByFrequency(items []string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var distinct []string

	for i, item := range items {
		if _, ok := counts[item]; !ok {
			firstSeen[item] = i
			distinct = append(distinct, item)
		}
		counts[item]++
	}

	sort.SliceStable(distinct, func(a, b int) bool {
		if counts[distinct[a]] != counts[distinct[b]] {
			return counts[distinct[a]] > counts[distinct[b]]
		}
		return firstSeen[distinct[a]] < firstSeen[distinct[b]]
	})

	return distinct
}

func capped(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
