package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/assessment"
	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/identity"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/questiongen"
	"github.com/prepdeck/prepdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "AI-powered interview preparation",
	Long:  "Prepdeck generates tailored quizzes and mock interviews from your profile, evaluates your answers, and tracks your results.",
}

func Execute() error {
	// A missing .env file is not an error; explicit env vars win.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the caller token for the single-user CLI.
func resolveUser() string {
	if u := os.Getenv("PREPDECK_USER"); u != "" {
		return u
	}
	return "local"
}

// buildService opens the store and constructs the assessment service.
// The caller owns the returned store and must close it.
func buildService(cmd *cobra.Command) (*assessment.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	svc := assessment.NewService(
		identity.EnvResolver{},
		questiongen.New(provider, questiongen.DefaultConfig()),
		evaluation.New(provider, evaluation.DefaultConfig()),
		feedback.New(provider),
		st,
	)
	return svc, st, nil
}
