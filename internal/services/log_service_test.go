package services

import (
	"testing"

	"github.com/mailmind/core/internal/database/models"
)

func logCount(t *testing.T, s *LogService) int64 {
	t.Helper()

	var count int64
	if err := s.db.Model(&models.Log{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count logs: %v", err)
	}
	return count
}

func TestLogLevelFiltering(t *testing.T) {
	db := newTestDB(t)
	s := NewLogServiceWithLevel(db, "WARN")

	s.Record(models.LogLevelDebug, models.LogModuleEmail, "a", "debug message", nil)
	s.Record(models.LogLevelInfo, models.LogModuleEmail, "b", "info message", nil)
	if got := logCount(t, s); got != 0 {
		t.Errorf("%d entries recorded below the threshold", got)
	}

	s.Record(models.LogLevelWarn, models.LogModuleEmail, "c", "warn message", nil)
	s.Record(models.LogLevelError, models.LogModuleEmail, "d", "error message", nil)
	if got := logCount(t, s); got != 2 {
		t.Errorf("got %d entries, want 2", got)
	}
}

func TestLogDetailsSerialized(t *testing.T) {
	db := newTestDB(t)
	s := NewLogService(db)

	s.LogProcessRun(5)

	var entry models.Log
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("no log entry recorded: %v", err)
	}
	if entry.Level != string(models.LogLevelInfo) || entry.Module != string(models.LogModuleProcess) {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Details != `{"processed":5}` {
		t.Errorf("details = %q", entry.Details)
	}
}
