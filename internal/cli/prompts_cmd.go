package cli

import (
	"fmt"
	"os"

	"github.com/mailmind/core/internal/services"
	"github.com/spf13/cobra"
)

// promptsCmd groups prompt template management commands
var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage AI prompt templates",
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all prompt templates",
	Run: func(cmd *cobra.Command, args []string) {
		promptService := services.NewPromptService(db)

		prompts, err := promptService.ListPrompts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, prompt := range prompts {
			edited := ""
			if prompt.Content != prompt.DefaultContent {
				edited = " (edited)"
			}
			fmt.Printf("%-20s %s%s\n", prompt.ID, prompt.Name, edited)
		}
	},
}

var promptsResetCmd = &cobra.Command{
	Use:   "reset [id]",
	Short: "Reset a prompt template to its seeded default",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		promptService := services.NewPromptService(db)

		prompt, err := promptService.ResetPrompt(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Prompt %q reset to default\n", prompt.ID)
	},
}

func init() {
	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsResetCmd)
}
