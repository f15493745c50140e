package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mailmind/core/internal/database/models"
	"gorm.io/gorm"
)

// LogService records operation logs in the database
type LogService struct {
	db       *gorm.DB
	logLevel models.LogLevel
}

// NewLogService creates a new LogService instance
func NewLogService(db *gorm.DB) *LogService {
	return &LogService{
		db:       db,
		logLevel: models.LogLevelInfo,
	}
}

// NewLogServiceWithLevel creates a new LogService instance with specified log level
func NewLogServiceWithLevel(db *gorm.DB, level string) *LogService {
	return &LogService{
		db:       db,
		logLevel: parseLogLevel(level),
	}
}

// parseLogLevel converts a string to LogLevel
func parseLogLevel(level string) models.LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return models.LogLevelDebug
	case "INFO":
		return models.LogLevelInfo
	case "WARN", "WARNING":
		return models.LogLevelWarn
	case "ERROR":
		return models.LogLevelError
	default:
		return models.LogLevelInfo
	}
}

// shouldLog checks if a log entry should be recorded based on log level
func (s *LogService) shouldLog(level models.LogLevel) bool {
	levelPriority := map[models.LogLevel]int{
		models.LogLevelDebug: 0,
		models.LogLevelInfo:  1,
		models.LogLevelWarn:  2,
		models.LogLevelError: 3,
	}

	return levelPriority[level] >= levelPriority[s.logLevel]
}

// Record writes one log entry. Details are serialized to JSON.
func (s *LogService) Record(level models.LogLevel, module models.LogModule, action, message string, details interface{}) {
	if !s.shouldLog(level) {
		return
	}

	entry := models.Log{
		Level:   string(level),
		Module:  string(module),
		Action:  action,
		Message: message,
	}
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			entry.Details = string(data)
		}
	}

	// Logging must never fail the operation being logged
	_ = s.db.Create(&entry).Error
}

// LogProcessRun records a completed inbox processing batch
func (s *LogService) LogProcessRun(processed int) {
	s.Record(models.LogLevelInfo, models.LogModuleProcess, "process_inbox",
		fmt.Sprintf("Processed %d email(s)", processed),
		map[string]interface{}{"processed": processed})
}

// LogDraftCreated records a generated reply draft
func (s *LogService) LogDraftCreated(emailID, draftID uint) {
	s.Record(models.LogLevelInfo, models.LogModuleDraft, "draft_created",
		fmt.Sprintf("Draft %d created for email %d", draftID, emailID),
		map[string]interface{}{"email_id": emailID, "draft_id": draftID})
}

// LogPromptUpdated records a prompt template edit or reset
func (s *LogService) LogPromptUpdated(promptID, action string) {
	s.Record(models.LogLevelInfo, models.LogModulePrompt, action,
		fmt.Sprintf("Prompt %q %s", promptID, action),
		map[string]interface{}{"prompt_id": promptID})
}

// LogOperationError records a failed operation
func (s *LogService) LogOperationError(module models.LogModule, action string, err error) {
	s.Record(models.LogLevelError, module, action, err.Error(), nil)
}
