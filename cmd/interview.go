package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/assessment"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview with per-answer AI feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		fmt.Println(theme.Hint.Render("Preparing your interview..."))
		attempt, err := svc.StartInterview(ctx, resolveUser())
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		total := attempt.Session.Len()

		for {
			q, ok := attempt.Session.CurrentOpen()
			if !ok {
				break
			}

			fmt.Println()
			fmt.Println(theme.Title.Render(fmt.Sprintf("Question %d of %d", attempt.Session.Current()+1, total)))
			fmt.Println(theme.Subtitle.Render("[" + string(q.Kind) + "]"))
			fmt.Println(theme.Card.Render(q.Text))
			fmt.Println(theme.Hint.Render("Type your answer and finish with an empty line."))

			answer, err := readAnswer(reader)
			if err != nil {
				return err
			}
			if strings.TrimSpace(answer) == "" {
				fmt.Println(theme.Incorrect.Render("An answer is required."))
				continue
			}

			ev, err := svc.SubmitInterviewAnswer(ctx, attempt, answer)
			if err != nil {
				// Evaluation failures leave the question pending, so
				// the user may retry.
				var (
					invalid     *llm.ErrInvalidResponse
					unavailable *llm.ErrProviderUnavailable
					rateLimited *llm.ErrRateLimit
				)
				if errors.As(err, &invalid) || errors.As(err, &unavailable) || errors.As(err, &rateLimited) {
					fmt.Println(theme.Incorrect.Render("Evaluation failed: " + err.Error()))
					fmt.Println(theme.Hint.Render("Your answer was not recorded. Try again."))
					continue
				}
				return err
			}

			fmt.Println()
			fmt.Println(theme.Score.Render(fmt.Sprintf("Score: %.0f/100", ev.Score)))
			fmt.Println(theme.Body.Render(ev.Feedback))
		}

		rec, err := svc.Finish(ctx, attempt)
		if rec != nil {
			printInterviewResult(rec)
		}
		return err
	},
}

// readAnswer reads lines until an empty line terminates the answer.
func readAnswer(reader *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func printInterviewResult(rec *assessment.Record) {
	fmt.Println()
	fmt.Println(theme.Title.Render("Interview complete!"))
	fmt.Println(theme.Score.Render(fmt.Sprintf("Overall: %.1f/100", rec.QuizScore)))
	if rec.TechnicalScore != nil {
		fmt.Println(theme.Body.Render(fmt.Sprintf("Technical accuracy:      %.1f", *rec.TechnicalScore)))
	}
	if rec.CommunicationScore != nil {
		fmt.Println(theme.Body.Render(fmt.Sprintf("Communication clarity:   %.1f", *rec.CommunicationScore)))
	}

	if len(rec.Strengths) > 0 {
		fmt.Println()
		fmt.Println(theme.Correct.Render("Strengths:"))
		for _, s := range rec.Strengths {
			fmt.Println("  • " + s)
		}
	}
	if len(rec.ImprovementAreas) > 0 {
		fmt.Println()
		fmt.Println(theme.Incorrect.Render("Areas to improve:"))
		for _, a := range rec.ImprovementAreas {
			fmt.Println("  • " + a)
		}
	}

	if rec.ImprovementTip != nil {
		fmt.Println()
		fmt.Println(theme.Card.Render(theme.Body.Render(*rec.ImprovementTip)))
	}
}
