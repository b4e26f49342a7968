package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM call audit log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		calls, err := s.ListLLMCalls(cmd.Context(), limit, purpose)
		if err != nil {
			return fmt.Errorf("query llm calls: %w", err)
		}

		if len(calls) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, c := range calls {
			ok := "✓"
			if !c.Success {
				ok = "✗"
			}
			model := c.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				c.ID,
				c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				c.Purpose,
				model,
				c.InputTokens,
				c.OutputTokens,
				c.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 50, "Maximum number of calls to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (quiz, interview, evaluation, tip)")
	llmCmd.AddCommand(llmListCmd)
}
