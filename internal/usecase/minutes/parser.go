package minutes

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
)

// minutesPayload is the shape the model is instructed to return. Missing
// fields decode to nil and are defaulted later; a wrong type anywhere is a
// parse failure that escalates to the fallback path.
type minutesPayload struct {
	Summary      []string              `json:"summary"`
	Decisions    []string              `json:"decisions"`
	Agenda       []string              `json:"agenda"`
	Participants []string              `json:"participants"`
	Topics       []entities.TopicScore `json:"topics"`
	ActionItems  []entities.ActionItem `json:"actionItems"`
}

// parseMinutesResponse parses the model reply into a MinutesRecord. The
// reply is expected to be a single JSON object, possibly wrapped in a
// markdown code block.
func parseMinutesResponse(reply string) (*entities.MinutesRecord, error) {
	reply = extractJSON(reply)

	var payload minutesPayload
	if err := json.Unmarshal([]byte(reply), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return &entities.MinutesRecord{
		Summary:      payload.Summary,
		Decisions:    payload.Decisions,
		Agenda:       payload.Agenda,
		Participants: payload.Participants,
		Topics:       payload.Topics,
		ActionItems:  payload.ActionItems,
	}, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
