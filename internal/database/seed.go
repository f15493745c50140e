package database

import (
	"time"

	"github.com/mailmind/core/internal/database/models"
	"gorm.io/gorm"
)

// defaultPrompts are the templates seeded for each AI workflow. The content
// captured here becomes both the initial and the reset target of each
// template.
var defaultPrompts = []models.Prompt{
	{
		ID:          "categorization",
		Name:        "Categorization Prompt",
		Description: "Categorize emails into predefined categories",
		Type:        models.PromptTypeCategorization,
		Content: `Categorize this email into exactly ONE of these categories: Important, Newsletter, Spam, To-Do.

Rules:
- "Important": Urgent matters, direct requests from people, time-sensitive content
- "Newsletter": Promotional content, subscriptions, regular updates from services
- "Spam": Unsolicited messages, suspicious content, irrelevant promotions
- "To-Do": Emails containing direct action requests or tasks requiring user response

Respond with ONLY the category name, nothing else.`,
	},
	{
		ID:          "action_extraction",
		Name:        "Action Item Extraction Prompt",
		Description: "Extract tasks and action items from emails",
		Type:        models.PromptTypeActionExtraction,
		Content: `Extract all action items and tasks from this email. For each task, identify:
1. The task description
2. Any deadline mentioned (or null if none)

Respond ONLY with a valid JSON array in this exact format:
[{"task": "description here", "deadline": "date or null"}]

If there are no action items, respond with an empty array: []
Do not include any explanation, only the JSON array.`,
	},
	{
		ID:          "auto_reply",
		Name:        "Auto-Reply Draft Prompt",
		Description: "Generate professional email reply drafts",
		Type:        models.PromptTypeAutoReply,
		Content: `Generate a professional email reply draft for this email. Consider:

1. If it's a meeting request: Draft a polite reply asking for agenda details or confirming availability
2. If it's a task request: Acknowledge receipt and indicate you'll review/respond
3. If it's informational: Thank them for the information and note any follow-up needed
4. If it's promotional/newsletter: No reply needed, respond with "NO_REPLY_NEEDED"

Keep the tone professional but friendly. Be concise.
Format as a complete email body, ready to send.`,
	},
}

// seedEmails returns the sample inbox created on first start
func seedEmails(now time.Time) []models.Email {
	return []models.Email{
		{
			Sender:      "Sarah Johnson",
			SenderEmail: "sarah.johnson@techcorp.com",
			Subject:     "Urgent: Q4 Project Review Meeting Tomorrow",
			Body: `Hi,

I hope this email finds you well. I wanted to remind you about our Q4 project review meeting scheduled for tomorrow at 2:00 PM.

Please come prepared with:
- Your quarterly progress report
- Budget utilization summary
- Key achievements and blockers
- Proposed timeline for Q1 initiatives

The meeting will be held in Conference Room B. Please confirm your attendance by end of day.

Best regards,
Sarah Johnson
Project Manager`,
			Date: now.Add(-2 * time.Hour),
		},
		{
			Sender:      "TechDigest Weekly",
			SenderEmail: "newsletter@techdigest.com",
			Subject:     "This Week in Tech: AI Breakthroughs & Industry News",
			Body: `TechDigest Weekly Newsletter

Top Stories This Week:

1. Major AI Company Announces Revolutionary Language Model
2. Cybersecurity Alert: New Vulnerabilities Discovered
3. Future of Remote Work: 2024 Trends Report
4. Startup Spotlight: Companies to Watch

Unsubscribe | Update Preferences | View in Browser`,
			Date: now.Add(-5 * time.Hour),
			Read: true,
		},
		{
			Sender:      "Mike Chen",
			SenderEmail: "mike.chen@clientco.com",
			Subject:     "RE: Contract Renewal - Action Required by Friday",
			Body: `Hello,

Following up on our discussion last week regarding the contract renewal.

I need you to:
1. Review the updated terms in the attached document
2. Send your feedback by this Friday (Dec 1st)
3. Schedule a call for next Monday to finalize

The legal team is waiting for our response, so your timely feedback is crucial.

Also, please share the updated pricing structure we discussed. I need it for our budget meeting on Thursday.

Thanks,
Mike`,
			Date: now.Add(-8 * time.Hour),
		},
		{
			Sender:      "AMAZING DEALS!!!",
			SenderEmail: "deals@sp4m-offers.xyz",
			Subject:     "YOU WON!!! Claim Your $10,000 Prize NOW!!!",
			Body: `CONGRATULATIONS!!!

You have been RANDOMLY SELECTED to receive $10,000 USD!!!

To claim your prize, simply:
1. Click the link below
2. Enter your bank details
3. Receive your money INSTANTLY!

>>> CLAIM NOW: http://totally-legit-prize.xyz/claim <<<

This offer expires in 24 HOURS! Don't miss out!`,
			Date: now.Add(-12 * time.Hour),
			Read: true,
		},
		{
			Sender:      "Emily Rodriguez",
			SenderEmail: "emily.r@designstudio.io",
			Subject:     "Design Assets Ready for Review",
			Body: `Hi there,

Great news! The design assets for the new marketing campaign are ready for your review.

I've uploaded everything to our shared drive:
- Brand guidelines update (PDF)
- Social media templates (Figma)
- Email banner designs (PNG/SVG)
- Landing page mockups (Figma)

Please review and provide feedback by Wednesday so we can make any necessary revisions before the campaign launch on Monday.

Best,
Emily Rodriguez
Senior Designer`,
			Date: now.Add(-24 * time.Hour),
		},
		{
			Sender:      "HR Department",
			SenderEmail: "hr@company.com",
			Subject:     "Reminder: Complete Annual Training by Dec 15",
			Body: `Dear Team Member,

This is a friendly reminder that all employees must complete the following mandatory training modules by December 15th:

Required Courses:
- Workplace Safety (1 hour)
- Data Privacy & Security (45 min)
- Anti-Harassment Training (30 min)
- Code of Conduct Review (20 min)

Your current completion status: 1/4 modules completed

Please allocate time this week to complete the remaining modules.

Human Resources Team`,
			Date: now.Add(-48 * time.Hour),
			Read: true,
		},
		{
			Sender:      "David Kim",
			SenderEmail: "david.kim@engineering.co",
			Subject:     "Bug Report: Critical Issue in Production",
			Body: `URGENT - Production Issue

Hi Team,

We've identified a critical bug in production that's affecting user authentication.

Issue Summary:
- Users intermittently getting logged out
- Session tokens expiring prematurely
- Affects approximately 15% of active users

I need someone to:
1. Check the authentication service logs immediately
2. Review recent deployments (last 48 hours)
3. Prepare a root cause analysis by EOD

Currently monitoring. Will provide updates every 30 minutes.

David Kim
Engineering Lead`,
			Date: now.Add(-30 * time.Minute),
		},
		{
			Sender:      "Rachel Green",
			SenderEmail: "rachel.green@partner.com",
			Subject:     "Thank You - Great Presentation Yesterday!",
			Body: `Hi,

Just wanted to drop you a quick note to say thank you for the excellent presentation yesterday.

Your insights on market trends were particularly valuable, and my team was impressed with the depth of your analysis.

Let's schedule a follow-up call next week to discuss next steps. How does Thursday at 3 PM work for you?

Warm regards,
Rachel Green
Director of Partnerships`,
			Date: now.Add(-24 * time.Hour),
			Read: true,
		},
	}
}

// Seed populates the prompt templates and the sample inbox. Prompts are
// created individually so templates added in a later release appear without
// disturbing existing ones; emails are only seeded into an empty store.
func Seed(db *gorm.DB) error {
	for _, prompt := range defaultPrompts {
		var count int64
		if err := db.Model(&models.Prompt{}).Where("id = ?", prompt.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		prompt.DefaultContent = prompt.Content
		if err := db.Create(&prompt).Error; err != nil {
			return err
		}
	}

	var emailCount int64
	if err := db.Model(&models.Email{}).Count(&emailCount).Error; err != nil {
		return err
	}
	if emailCount == 0 {
		emails := seedEmails(time.Now())
		for i := range emails {
			if err := db.Create(&emails[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
