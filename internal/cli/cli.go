package cli

import (
	"os"

	"github.com/mailmind/core/internal/config"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	db  *gorm.DB
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mailmind",
	Short: "AI email productivity assistant backend",
	Long: `Mailmind is the backend service for an AI email productivity
assistant. Without arguments it starts the HTTP API server.

The command line tool additionally provides:
  mailmind process          # run the inbox categorization batch once
  mailmind prompts list     # list the AI prompt templates
  mailmind prompts reset    # reset a prompt template to its default`,
}

// Execute runs the CLI with the provided database and config
func Execute(database *gorm.DB, conf *config.Config) {
	db = database
	cfg = conf

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(promptsCmd)
}
