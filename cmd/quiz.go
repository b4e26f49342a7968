package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/assessment"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a multiple-choice quiz tailored to your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		fmt.Println(theme.Hint.Render("Generating your quiz..."))
		attempt, err := svc.StartQuiz(ctx, resolveUser())
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		questions := attempt.Session.ChoiceQuestions()

		for i, q := range questions {
			fmt.Println()
			fmt.Println(theme.Title.Render(fmt.Sprintf("Question %d of %d", i+1, len(questions))))
			fmt.Println(theme.Card.Render(q.Text))
			for j, opt := range q.Options {
				fmt.Printf("  %d) %s\n", j+1, theme.Body.Render(opt))
			}

			answer, err := readChoice(reader, q.Options)
			if err != nil {
				return err
			}
			if err := svc.SubmitQuizAnswer(attempt, answer); err != nil {
				return err
			}
		}

		rec, err := svc.Finish(ctx, attempt)
		if rec != nil {
			printQuizResult(rec)
		}
		return err
	},
}

// readChoice prompts until the user enters a valid option number or the
// exact option text.
func readChoice(reader *bufio.Reader, options []string) (string, error) {
	for {
		fmt.Print(theme.Hint.Render("Your answer (1-4): "), "")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		line = strings.TrimSpace(line)

		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, opt := range options {
			if strings.EqualFold(line, opt) {
				return opt, nil
			}
		}
		fmt.Println(theme.Incorrect.Render("Please enter a number between 1 and 4."))
	}
}

func printQuizResult(rec *assessment.Record) {
	fmt.Println()
	fmt.Println(theme.Title.Render("Quiz complete!"))
	fmt.Println(theme.Score.Render(fmt.Sprintf("Score: %.1f%%", rec.QuizScore)))
	fmt.Println()

	for i, q := range rec.Questions {
		mark := theme.Correct.Render("✓")
		if !q.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		fmt.Printf("%s %d. %s\n", mark, i+1, q.Question)
		if !q.IsCorrect {
			fmt.Printf("   %s %s\n", theme.Subtitle.Render("Correct answer:"), q.Answer)
			if q.Explanation != "" {
				fmt.Printf("   %s\n", theme.Hint.Render(q.Explanation))
			}
		}
	}

	if rec.ImprovementTip != nil {
		fmt.Println()
		fmt.Println(theme.Card.Render(theme.Body.Render("Tip: " + *rec.ImprovementTip)))
	}
}
