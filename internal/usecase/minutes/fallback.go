package minutes

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
)

// stopWords are common transcript tokens that must never be treated as
// participant names.
var stopWords = map[string]struct{}{
	"date": {}, "time": {}, "meeting": {}, "call": {}, "team": {},
	"group": {}, "project": {}, "need": {}, "will": {}, "can": {},
	"should": {}, "would": {}, "discussion": {}, "agenda": {},
	"minutes": {}, "action": {}, "item": {}, "decision": {},
	"summary": {}, "everyone": {}, "all": {}, "we": {}, "us": {},
	"they": {}, "them": {}, "it": {}, "this": {}, "that": {},
}

// Speaker-attributed lines ("Alice:") and reporting-verb sentences
// ("Alice said ...") are the two participant signals in a raw transcript.
var participantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*):`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:said|mentioned|noted|stated)`),
}

// Action-item patterns anchor on a capitalized owner name; the verb phrase
// matches case-insensitively. The owner may appear as a speaker prefix
// ("Alice: I will ..."), so an optional colon and first-person pronoun sit
// between name and verb. Task text runs to the next sentence boundary
// (period, newline, or end of input).
var actionItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*):?\s+(?:I\s+)?(?i:will|should|needs to|must)\s+([^.\n]+)`),
	regexp.MustCompile(`(?i:action item)[^:\n]*:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*):?\s+(?:I\s+)?(?i:will|should|needs to|must)\s+([^.\n]+)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*):?\s+(?:I\s+)?(?i:agreed to|committed to)\s+([^.\n]+)`),
}

// extractParticipantsFallback scans the transcript for speaker names using
// the deterministic patterns above. Total: a transcript with no matches
// yields an empty slice.
func extractParticipantsFallback(transcript string) []string {
	names := make([]string, 0)
	for _, pattern := range participantPatterns {
		for _, m := range pattern.FindAllStringSubmatch(transcript, -1) {
			names = append(names, m[1])
		}
	}
	return cleanParticipants(names)
}

// extractActionItemsFallback scans the transcript for owner-plus-commitment
// sentences and returns one item per match with the default deadline and
// status.
func extractActionItemsFallback(transcript string) []entities.ActionItem {
	items := make([]entities.ActionItem, 0)
	for _, pattern := range actionItemPatterns {
		for _, m := range pattern.FindAllStringSubmatch(transcript, -1) {
			owner := strings.TrimSpace(m[1])
			task := strings.TrimSpace(m[2])
			if owner == "" || task == "" {
				continue
			}
			items = append(items, entities.NewActionItem(task, owner))
		}
	}
	return items
}

// cleanParticipants trims, filters, and dedupes a participant list while
// preserving first-seen order. Applying it twice yields the same result.
func cleanParticipants(participants []string) []string {
	cleaned := make([]string, 0, len(participants))
	seen := make(map[string]struct{}, len(participants))

	for _, p := range participants {
		p = strings.TrimSpace(p)
		if !isPlausibleName(p) {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		cleaned = append(cleaned, p)
	}

	return cleaned
}

// isPlausibleName applies the participant heuristic: 2+ characters,
// leading uppercase letter, not a stop word, not a URL or handle. Known
// limitation: single-word lowercase names and some non-Latin scripts are
// rejected.
func isPlausibleName(name string) bool {
	if utf8.RuneCountInString(name) < 2 {
		return false
	}

	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(first) {
		return false
	}

	lower := strings.ToLower(name)
	if _, junk := stopWords[lower]; junk {
		return false
	}
	if strings.HasPrefix(lower, "http") || strings.HasPrefix(lower, "www") || strings.HasPrefix(lower, "@") {
		return false
	}

	return true
}
