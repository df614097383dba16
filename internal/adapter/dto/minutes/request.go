package minutes

// ProcessTranscriptRequest is the body of POST /api/ai-minutes
type ProcessTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required,notblank"`
}
