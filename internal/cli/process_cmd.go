package cli

import (
	"fmt"
	"os"

	"github.com/mailmind/core/internal/functions"
	"github.com/mailmind/core/internal/functions/ai"
	"github.com/mailmind/core/internal/services"
	"github.com/spf13/cobra"
)

// processCmd runs the inbox categorization batch once and prints a summary
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Categorize all uncategorized emails",
	Run: func(cmd *cobra.Command, args []string) {
		registry := services.NewRegistry(db, cfg.LogLevel)

		client := ai.NewClient()
		client.Configure(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel, cfg.AIBaseURL)
		if !client.IsConfigured() {
			fmt.Fprintln(os.Stderr, "Error: AI client is not configured (set MAILMIND_AI_API_KEY)")
			os.Exit(1)
		}

		gateway := functions.NewGateway(client)
		processor := functions.NewProcessor(registry.Emails, registry.Prompts, gateway,
			functions.NewFixedDelayGate(cfg.ProcessDelay()))

		result, err := processor.ProcessInbox()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		registry.Logs.LogProcessRun(result.Processed)

		for _, email := range result.Emails {
			category := "Uncategorized"
			if email.Category != nil {
				category = *email.Category
			}
			fmt.Printf("%4d  %-13s %s\n", email.ID, category, email.Subject)
		}
		fmt.Printf("\nProcessed %d email(s)\n", result.Processed)
	},
}
