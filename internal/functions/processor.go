package functions

import (
	"fmt"

	"github.com/mailmind/core/internal/database/models"
	"github.com/mailmind/core/internal/services"
)

// Processor runs the inbox batch workflow: categorize and extract action
// items for every email that has no category yet.
type Processor struct {
	emails  *services.EmailService
	prompts *services.PromptService
	gateway *Gateway
	gate    Gate
}

// NewProcessor creates a new Processor instance
func NewProcessor(emails *services.EmailService, prompts *services.PromptService, gateway *Gateway, gate Gate) *Processor {
	return &Processor{
		emails:  emails,
		prompts: prompts,
		gateway: gateway,
		gate:    gate,
	}
}

// ProcessResult aggregates one batch run
type ProcessResult struct {
	Processed int
	Emails    []models.Email
}

// ProcessInbox categorizes every currently uncategorized email. The set is
// snapshotted up front, so emails created during the run wait for the next
// pass. Emails are handled strictly sequentially with the gate interposed
// between iterations to stay under the upstream rate limit, and each
// result is written back immediately so partial progress is visible to
// concurrent readers. One email's failure never aborts the batch: the
// gateway degrades categorization failures to Uncategorized and extraction
// failures to an empty list.
func (p *Processor) ProcessInbox() (*ProcessResult, error) {
	snapshot, err := p.emails.ListUncategorized()
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{Emails: make([]models.Email, 0, len(snapshot))}

	for i, email := range snapshot {
		if i > 0 {
			p.gate.Wait()
		}

		// Templates are re-read per email so edits made mid-batch take
		// effect on the remaining emails.
		categorizationPrompt, err := p.prompts.GetPromptByType(models.PromptTypeCategorization)
		if err != nil {
			return nil, fmt.Errorf("categorization prompt not configured: %w", err)
		}
		extractionPrompt, err := p.prompts.GetPromptByType(models.PromptTypeActionExtraction)
		if err != nil {
			return nil, fmt.Errorf("action extraction prompt not configured: %w", err)
		}

		category := p.gateway.Categorize(email.Body, categorizationPrompt.Content)
		items := p.gateway.ExtractActionItems(email.Body, extractionPrompt.Content)

		updated, err := p.emails.SetProcessingResult(email.ID, category, items)
		if err != nil {
			// The email vanished mid-batch; skip it and keep going
			continue
		}

		result.Processed++
		result.Emails = append(result.Emails, *updated)
	}

	return result, nil
}
