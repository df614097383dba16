package minutes

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
	"github.com/johnquangdev/transcript-processor/internal/infrastructure/metrics"
	"github.com/johnquangdev/transcript-processor/pkg/clock"
)

// systemPrompt is the fixed instruction sent with every extraction request
const systemPrompt = `You are an expert meeting minutes processor. Your task is to analyze meeting transcripts and extract structured information with high accuracy.

You must return a JSON response with exactly these fields:
- summary: Clear bullet-point summary of key discussion points
- decisions: Array of confirmed decisions made (not suggestions)
- agenda: Array of topics/agenda items discussed
- participants: Array of unique valid participant names (no junk like "date", "need", etc.)
- topics: Array of objects with 'topic' and 'confidence' score (0.0-1.0)
- actionItems: Array of objects with 'task', 'owner', 'deadline', 'status'

Be precise and only extract what's clearly present in the transcript. For action items, extract only clear commitments with owners.`

// Service converts a raw transcript into a structured MinutesRecord
type Service interface {
	Process(ctx context.Context, transcript string) *entities.MinutesRecord
	HealthCheck() entities.HealthStatus
}

// Completer is the remote text-generation boundary consumed by the service
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	HasAPIKey() bool
}

type extractor struct {
	llm     Completer
	modelID string
	clock   clock.Clock
	logger  *zap.Logger
}

// NewService constructs the transcript extractor. The Completer is expected
// to be fully configured; credential validation happens at client
// construction, not here.
func NewService(llm Completer, modelID string, clk clock.Clock, logger *zap.Logger) Service {
	return &extractor{
		llm:     llm,
		modelID: modelID,
		clock:   clk,
		logger:  logger,
	}
}

// Process transforms a transcript into a complete MinutesRecord. It never
// fails: any primary-path error degrades to the regex fallback, and the
// returned record is always schema-valid.
func (s *extractor) Process(ctx context.Context, transcript string) *entities.MinutesRecord {
	start := time.Now()
	defer func() {
		metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	}()

	record, err := s.aiExtract(ctx, transcript)
	if err != nil {
		s.logger.Warn("primary extraction failed, using regex fallback",
			zap.Error(err),
			zap.Int("transcript_length", len(transcript)),
		)
		metrics.ExtractionsTotal.WithLabelValues(metrics.PathFallback).Inc()
		record = s.fallbackRecord(transcript)
	} else {
		metrics.ExtractionsTotal.WithLabelValues(metrics.PathPrimary).Inc()
	}

	s.validateAndEnhance(record, transcript)

	s.logger.Info("transcript processed",
		zap.String("model_used", record.ModelUsed),
		zap.Int("participants", len(record.Participants)),
		zap.Int("action_items", len(record.ActionItems)),
	)

	return record
}

// aiExtract runs the primary path: one round trip to the model, then a
// strict parse of the reply. Any failure is returned to the orchestrator,
// which branches to the fallback; there is no retry.
func (s *extractor) aiExtract(ctx context.Context, transcript string) (*entities.MinutesRecord, error) {
	prompt := fmt.Sprintf(`Analyze this meeting transcript and extract structured information:

%s

Return the result as a JSON object with the required fields. Ensure:
- Participants are real names only (no junk words)
- Action items have clear owners and tasks
- Decisions are confirmed commitments, not discussions
- Topics include confidence scores
- Summary is concise bullet points`, transcript)

	reply, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	record, err := parseMinutesResponse(reply)
	if err != nil {
		return nil, err
	}

	record.ProcessedAt = clock.Timestamp(s.clock.NowUTC())
	record.ModelUsed = s.modelID
	return record, nil
}

// validateAndEnhance guarantees the record invariants after either path.
// Idempotent: running it twice changes nothing.
func (s *extractor) validateAndEnhance(record *entities.MinutesRecord, transcript string) {
	if record.Summary == nil {
		record.Summary = []string{}
	}
	if record.Decisions == nil {
		record.Decisions = []string{}
	}
	if record.Agenda == nil {
		record.Agenda = []string{}
	}
	if record.Topics == nil {
		record.Topics = []entities.TopicScore{}
	}

	record.Participants = cleanParticipants(record.Participants)
	if len(record.Participants) == 0 {
		record.Participants = extractParticipantsFallback(transcript)
	}

	if len(record.ActionItems) == 0 {
		record.ActionItems = extractActionItemsFallback(transcript)
	}
	for i := range record.ActionItems {
		if record.ActionItems[i].Deadline == "" {
			record.ActionItems[i].Deadline = entities.ActionItemDeadlineUnspecified
		}
		if record.ActionItems[i].Status == "" {
			record.ActionItems[i].Status = entities.ActionItemStatusPending
		}
	}
}

// fallbackRecord builds a complete record from regex extraction alone
func (s *extractor) fallbackRecord(transcript string) *entities.MinutesRecord {
	return &entities.MinutesRecord{
		Summary: []string{
			"Meeting transcript processed with fallback method",
			"AI processing temporarily unavailable",
		},
		Decisions:    []string{},
		Agenda:       []string{"General discussion"},
		Participants: extractParticipantsFallback(transcript),
		Topics: []entities.TopicScore{
			{Topic: "General meeting discussion", Confidence: 0.7},
		},
		ActionItems: extractActionItemsFallback(transcript),
		ProcessedAt: clock.Timestamp(s.clock.NowUTC()),
		ModelUsed:   entities.ModelUsedFallback,
	}
}

// HealthCheck reports configuration readiness without touching the network
func (s *extractor) HealthCheck() entities.HealthStatus {
	status := entities.HealthStatusUnhealthy
	if s.llm.HasAPIKey() {
		status = entities.HealthStatusHealthy
	}
	return entities.HealthStatus{
		Status:    status,
		Model:     s.modelID,
		HasAPIKey: s.llm.HasAPIKey(),
		Timestamp: clock.Timestamp(s.clock.NowUTC()),
	}
}
