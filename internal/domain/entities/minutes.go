package entities

// MinutesRecord is the structured minutes produced for a single transcript.
// It has no persisted identity; the record is built per request and handed
// back to the caller for rendering or download.
type MinutesRecord struct {
	Summary      []string     `json:"summary"`
	Decisions    []string     `json:"decisions"`
	Agenda       []string     `json:"agenda"`
	Participants []string     `json:"participants"`
	Topics       []TopicScore `json:"topics"`
	ActionItems  []ActionItem `json:"actionItems"`
	ProcessedAt  string       `json:"processed_at"`
	ModelUsed    string       `json:"model_used"`
}

// TopicScore is a discussed topic with the extractor's confidence in it.
type TopicScore struct {
	Topic      string  `json:"topic"`
	Confidence float64 `json:"confidence"` // 0.0-1.0
}

// ActionItem represents a commitment extracted from the transcript
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
	Status   string `json:"status"`
}

// ActionItem defaults applied when the extractor cannot determine a value
const (
	ActionItemDeadlineUnspecified = "Not specified"
	ActionItemStatusPending       = "Pending"
)

// ModelUsedFallback marks records produced by the regex fallback path
const ModelUsedFallback = "fallback/regex"

// NewActionItem creates an action item with the default deadline and status
func NewActionItem(task, owner string) ActionItem {
	return ActionItem{
		Task:     task,
		Owner:    owner,
		Deadline: ActionItemDeadlineUnspecified,
		Status:   ActionItemStatusPending,
	}
}

// HealthStatus reports extractor configuration readiness. It is computed
// locally and never reflects live connectivity to the LLM provider.
type HealthStatus struct {
	Status    string `json:"status"` // healthy, unhealthy
	Model     string `json:"model"`
	HasAPIKey bool   `json:"has_api_key"`
	Timestamp string `json:"timestamp"`
}

// HealthStatus values
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)
