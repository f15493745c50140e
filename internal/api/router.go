package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mailmind/core/internal/api/handlers"
	"github.com/mailmind/core/internal/config"
	"github.com/mailmind/core/internal/functions"
	"github.com/mailmind/core/internal/functions/ai"
	"github.com/mailmind/core/internal/services"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the Gin router with all routes
// configured, using the HTTP completion client from the configuration.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	client := ai.NewClient()
	client.Configure(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel, cfg.AIBaseURL)
	return SetupRouterWithCompleter(db, cfg, client)
}

// SetupRouterWithCompleter wires the router around an explicit completion
// boundary. Tests inject a stub completer here.
func SetupRouterWithCompleter(db *gorm.DB, cfg *config.Config, completer functions.Completer) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registry := services.NewRegistry(db, cfg.LogLevel)
	gateway := functions.NewGateway(completer)
	processor := functions.NewProcessor(registry.Emails, registry.Prompts, gateway,
		functions.NewFixedDelayGate(cfg.ProcessDelay()))

	emailHandler := handlers.NewEmailHandler(registry, gateway, processor)
	promptHandler := handlers.NewPromptHandler(registry)
	draftHandler := handlers.NewDraftHandler(registry)
	chatHandler := handlers.NewChatHandler(registry, gateway)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		emails := api.Group("/emails")
		{
			emails.GET("", emailHandler.ListEmails)
			emails.POST("/process", emailHandler.ProcessInbox)
			emails.GET("/:id", emailHandler.GetEmail)
			emails.PATCH("/:id", emailHandler.UpdateEmail)
			emails.POST("/:id/extract-actions", emailHandler.ExtractActions)
			emails.POST("/:id/generate-draft", emailHandler.GenerateDraft)
		}

		prompts := api.Group("/prompts")
		{
			prompts.GET("", promptHandler.ListPrompts)
			prompts.PATCH("/:id", promptHandler.UpdatePrompt)
			prompts.POST("/:id/reset", promptHandler.ResetPrompt)
		}

		drafts := api.Group("/drafts")
		{
			drafts.GET("", draftHandler.ListDrafts)
			drafts.POST("", draftHandler.CreateDraft)
			drafts.PATCH("/:id", draftHandler.UpdateDraft)
			drafts.DELETE("/:id", draftHandler.DeleteDraft)
		}

		chat := api.Group("/chat")
		{
			chat.POST("", chatHandler.SendMessage)
			chat.GET("/:emailId", chatHandler.GetHistory)
			chat.DELETE("/:emailId", chatHandler.ClearHistory)
		}
	}

	return router
}
