package export

import (
	"fmt"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
)

// Document layout shared by both renderers: title, generation metadata,
// then bulleted sections in a fixed order, then the action-item table.
// Sections with no content are omitted entirely.

const docTitle = "Meeting Minutes"

// actionTableHeader is the four-column action item table header
var actionTableHeader = [4]string{"Task", "Owner", "Deadline", "Status"}

type section struct {
	Heading string
	Bullets []string
}

// metadataLines returns the generation metadata printed under the title
func metadataLines(rec *entities.MinutesRecord) []string {
	return []string{
		fmt.Sprintf("Generated on: %s", rec.ProcessedAt),
		fmt.Sprintf("Processed by: %s", rec.ModelUsed),
	}
}

// buildSections assembles the non-empty bulleted sections in render order
func buildSections(rec *entities.MinutesRecord) []section {
	sections := make([]section, 0, 5)

	if len(rec.Participants) > 0 {
		sections = append(sections, section{Heading: "Participants", Bullets: rec.Participants})
	}
	if len(rec.Summary) > 0 {
		sections = append(sections, section{Heading: "Summary", Bullets: rec.Summary})
	}
	if len(rec.Agenda) > 0 {
		sections = append(sections, section{Heading: "Agenda Items", Bullets: rec.Agenda})
	}
	if len(rec.Topics) > 0 {
		bullets := make([]string, 0, len(rec.Topics))
		for _, t := range rec.Topics {
			bullets = append(bullets, fmt.Sprintf("%s (Confidence: %.1f%%)", t.Topic, t.Confidence*100))
		}
		sections = append(sections, section{Heading: "Topics Discussed", Bullets: bullets})
	}
	if len(rec.Decisions) > 0 {
		sections = append(sections, section{Heading: "Decisions Made", Bullets: rec.Decisions})
	}

	return sections
}

// actionTableRows returns the table body, substituting the record defaults
// for blank deadline and status cells.
func actionTableRows(rec *entities.MinutesRecord) [][4]string {
	rows := make([][4]string, 0, len(rec.ActionItems))
	for _, item := range rec.ActionItems {
		deadline := item.Deadline
		if deadline == "" {
			deadline = entities.ActionItemDeadlineUnspecified
		}
		status := item.Status
		if status == "" {
			status = entities.ActionItemStatusPending
		}
		rows = append(rows, [4]string{item.Task, item.Owner, deadline, status})
	}
	return rows
}
