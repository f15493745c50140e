package functions

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mailmind/core/internal/database/models"
)

// categoryPriority is the fixed matching order for categorization
// responses. First match wins; the order is part of the contract.
var categoryPriority = []models.EmailCategory{
	models.CategoryImportant,
	models.CategoryNewsletter,
	models.CategorySpam,
	models.CategoryTodo,
}

// MatchCategory maps a raw completion response onto the closed category
// set. Matching is case-sensitive substring containment because the model
// is not guaranteed to answer with exactly one token. Responses matching
// none of the known names fall back to Uncategorized.
func MatchCategory(response string) models.EmailCategory {
	text := strings.TrimSpace(response)
	for _, category := range categoryPriority {
		if strings.Contains(text, string(category)) {
			return category
		}
	}
	return models.CategoryUncategorized
}

// ParseActionItems extracts the action item list from a raw completion
// response. The model often wraps the JSON array in prose or a fenced code
// block, so the span from the first '[' to the last ']' is parsed rather
// than the whole response. Items without a task are dropped; anything
// unparseable yields an empty result, never an error.
func ParseActionItems(response string) []models.ActionItem {
	text := strings.TrimSpace(response)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil
	}

	var items []models.ActionItem
	for _, entry := range raw {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		task := ""
		if truthy(obj["task"]) {
			task = coerceString(obj["task"])
		}
		if task == "" {
			continue
		}

		item := models.ActionItem{Task: task}
		if truthy(obj["deadline"]) {
			deadline := coerceString(obj["deadline"])
			item.Deadline = &deadline
		}
		items = append(items, item)
	}
	return items
}

// noReplySentinel is the marker the auto-reply prompt contract uses to
// signal that an email should not get a draft.
const noReplySentinel = "NO_REPLY_NEEDED"

// ContainsNoReply reports whether the response carries the no-reply
// sentinel.
func ContainsNoReply(response string) bool {
	return strings.Contains(response, noReplySentinel)
}

// truthy mirrors loose JSON truthiness: nil, "", false and 0 are absent
// values as far as the extraction contract is concerned.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	}
	return true
}

// coerceString renders a loosely typed JSON value as a string
func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
