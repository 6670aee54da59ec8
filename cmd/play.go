package cmd

import (
	"context"
	"fmt"

	"github.com/sambit/prepdrill/internal/app"
	"github.com/sambit/prepdrill/internal/coach"
	"github.com/sambit/prepdrill/internal/llm"
	"github.com/sambit/prepdrill/internal/questiongen"
	"github.com/sambit/prepdrill/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a drill session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds the LLM provider, and launches the TUI.
// Questions come from the LLM, so an unconfigured provider is fatal here
// rather than a degraded mode.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured (set PREPDRILL_LLM_PROVIDER or an API key): %w", err)
	}

	return app.Run(app.Options{
		Fetcher: questiongen.New(provider, questiongen.DefaultConfig()),
		Coach:   coach.New(provider, coach.DefaultConfig()),
	})
}
