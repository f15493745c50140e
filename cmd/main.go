package main

import (
	"log"
	"os"

	"github.com/mailmind/core/internal/api"
	"github.com/mailmind/core/internal/cli"
	"github.com/mailmind/core/internal/config"
	"github.com/mailmind/core/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Check if running CLI command
	if len(os.Args) > 1 {
		cli.Execute(db, cfg)
		return
	}

	router := api.SetupRouter(db, cfg)

	log.Printf("Starting mailmind server on port %s", cfg.APIPort)
	log.Printf("Database path: %s", cfg.DatabasePath)
	if cfg.AIAPIKey == "" {
		log.Printf("Warning: AI API key is not set; AI workflows will degrade to safe defaults")
	}
	if err := router.Run(":" + cfg.APIPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
