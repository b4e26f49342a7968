package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your past assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := svc.History(cmd.Context(), resolveUser())
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println(theme.Hint.Render("No assessments yet. Run `prepdeck quiz` or `prepdeck interview` to get started."))
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-7s  %-7s  %-7s\n", "Date", "Category", "Score", "Tech", "Comm")
		for _, r := range records {
			tech, comm := "-", "-"
			if r.TechnicalScore != nil {
				tech = fmt.Sprintf("%.1f", *r.TechnicalScore)
			}
			if r.CommunicationScore != nil {
				comm = fmt.Sprintf("%.1f", *r.CommunicationScore)
			}
			fmt.Printf("%-19s  %-12s  %-7.1f  %-7s  %-7s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Category,
				r.QuizScore,
				tech,
				comm,
			)
		}
		return nil
	},
}
