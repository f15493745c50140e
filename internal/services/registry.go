package services

import (
	"gorm.io/gorm"
)

// Registry bundles the entity services over one database handle. It is
// constructed once at process start and passed explicitly to handlers and
// workflows, so tests can build isolated instances.
type Registry struct {
	Emails  *EmailService
	Prompts *PromptService
	Drafts  *DraftService
	Chats   *ChatService
	Logs    *LogService
}

// NewRegistry creates the service registry
func NewRegistry(db *gorm.DB, logLevel string) *Registry {
	return &Registry{
		Emails:  NewEmailService(db),
		Prompts: NewPromptService(db),
		Drafts:  NewDraftService(db),
		Chats:   NewChatService(db),
		Logs:    NewLogServiceWithLevel(db, logLevel),
	}
}
