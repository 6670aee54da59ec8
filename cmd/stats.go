package cmd

import (
	"github.com/spf13/cobra"
)

// statsCmd is a top-level alias for `llm stats`: token usage and estimated
// cost are the only durable numbers the app keeps.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return llmStatsCmd.RunE(cmd, args)
	},
}
