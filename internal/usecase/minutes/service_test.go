package minutes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
	"github.com/johnquangdev/transcript-processor/pkg/clock"
)

// fakeCompleter stubs the remote text-generation boundary
type fakeCompleter struct {
	reply  string
	err    error
	hasKey bool
	calls  int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompleter) HasAPIKey() bool { return f.hasKey }

var testClock = clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

func newTestService(llm Completer) Service {
	return NewService(llm, "openai/gpt-4o-mini", testClock, zap.NewNop())
}

func TestProcess_PrimaryPathFencedJSON(t *testing.T) {
	llm := &fakeCompleter{
		hasKey: true,
		reply: "```json\n" + `{
  "summary": ["Quarterly numbers reviewed"],
  "decisions": ["Ship v2 next sprint"],
  "agenda": ["Q2 review"],
  "participants": ["Alice", "Bob"],
  "topics": [{"topic": "Roadmap", "confidence": 0.9}],
  "actionItems": [{"task": "Draft release notes", "owner": "Bob", "deadline": "Friday", "status": "Pending"}]
}` + "\n```",
	}
	svc := newTestService(llm)

	record := svc.Process(context.Background(), "Alice: hello. Bob: hi.")
	require.NotNil(t, record)

	assert.Equal(t, []string{"Quarterly numbers reviewed"}, record.Summary)
	assert.Equal(t, []string{"Ship v2 next sprint"}, record.Decisions)
	assert.Equal(t, []string{"Q2 review"}, record.Agenda)
	assert.Equal(t, []string{"Alice", "Bob"}, record.Participants)
	require.Len(t, record.Topics, 1)
	assert.Equal(t, "Roadmap", record.Topics[0].Topic)
	assert.InDelta(t, 0.9, record.Topics[0].Confidence, 1e-9)
	require.Len(t, record.ActionItems, 1)
	assert.Equal(t, "Draft release notes", record.ActionItems[0].Task)
	assert.Equal(t, "Friday", record.ActionItems[0].Deadline)

	assert.Equal(t, "openai/gpt-4o-mini", record.ModelUsed)
	assert.Equal(t, "2025-06-01T12:00:00Z", record.ProcessedAt)
}

func TestProcess_TransportErrorFallsBack(t *testing.T) {
	llm := &fakeCompleter{hasKey: true, err: errors.New("connection refused")}
	svc := newTestService(llm)

	transcript := "Alice: I will finish the report by Friday. Bob: I agreed to review it."
	record := svc.Process(context.Background(), transcript)
	require.NotNil(t, record)

	assert.Equal(t, entities.ModelUsedFallback, record.ModelUsed)
	assert.Equal(t, []string{"General discussion"}, record.Agenda)
	assert.Empty(t, record.Decisions)
	assert.Len(t, record.Summary, 2)
	require.Len(t, record.Topics, 1)
	assert.Equal(t, "General meeting discussion", record.Topics[0].Topic)
	assert.InDelta(t, 0.7, record.Topics[0].Confidence, 1e-9)
	assert.NotEmpty(t, record.Participants)
	assert.NotEmpty(t, record.ActionItems)
	assert.Equal(t, "2025-06-01T12:00:00Z", record.ProcessedAt)
	assert.Equal(t, 1, llm.calls)
}

func TestProcess_MalformedReplyFallsBack(t *testing.T) {
	llm := &fakeCompleter{hasKey: true, reply: "Sorry, I cannot help with that."}
	svc := newTestService(llm)

	record := svc.Process(context.Background(), "Alice: hello everyone.")
	require.NotNil(t, record)
	assert.Equal(t, entities.ModelUsedFallback, record.ModelUsed)
	assert.Equal(t, []string{"Alice"}, record.Participants)
}

func TestProcess_WrongShapeFallsBack(t *testing.T) {
	// participants must be an array of strings
	llm := &fakeCompleter{hasKey: true, reply: `{"participants": "Alice, Bob"}`}
	svc := newTestService(llm)

	record := svc.Process(context.Background(), "Alice: hello.")
	assert.Equal(t, entities.ModelUsedFallback, record.ModelUsed)
}

func TestProcess_BackfillsEmptyCriticalFields(t *testing.T) {
	// Primary path succeeds but returns junk participants and no action
	// items; both are backfilled from the transcript while the record
	// stays attributed to the primary model.
	llm := &fakeCompleter{
		hasKey: true,
		reply:  `{"summary": ["Short sync"], "participants": ["meeting", "date"], "actionItems": []}`,
	}
	svc := newTestService(llm)

	transcript := "Alice: I will finish the report by Friday."
	record := svc.Process(context.Background(), transcript)

	assert.Equal(t, "openai/gpt-4o-mini", record.ModelUsed)
	assert.Equal(t, []string{"Alice"}, record.Participants)
	require.Len(t, record.ActionItems, 1)
	assert.Equal(t, "Alice", record.ActionItems[0].Owner)
}

func TestProcess_AllContentFieldsAlwaysPresent(t *testing.T) {
	llm := &fakeCompleter{hasKey: true, reply: `{}`}
	svc := newTestService(llm)

	record := svc.Process(context.Background(), "no names in this text")

	assert.NotNil(t, record.Summary)
	assert.NotNil(t, record.Decisions)
	assert.NotNil(t, record.Agenda)
	assert.NotNil(t, record.Participants)
	assert.NotNil(t, record.Topics)
	assert.NotNil(t, record.ActionItems)
	assert.Equal(t, "openai/gpt-4o-mini", record.ModelUsed)
}

func TestProcess_DefaultsActionItemFields(t *testing.T) {
	llm := &fakeCompleter{
		hasKey: true,
		reply:  `{"actionItems": [{"task": "Ping legal", "owner": "Carol"}], "participants": ["Carol"]}`,
	}
	svc := newTestService(llm)

	record := svc.Process(context.Background(), "Carol: checking in.")
	require.Len(t, record.ActionItems, 1)
	assert.Equal(t, entities.ActionItemDeadlineUnspecified, record.ActionItems[0].Deadline)
	assert.Equal(t, entities.ActionItemStatusPending, record.ActionItems[0].Status)
}

func TestHealthCheck(t *testing.T) {
	svc := newTestService(&fakeCompleter{hasKey: true})
	status := svc.HealthCheck()

	assert.Equal(t, entities.HealthStatusHealthy, status.Status)
	assert.True(t, status.HasAPIKey)
	assert.Equal(t, "openai/gpt-4o-mini", status.Model)
	assert.Equal(t, "2025-06-01T12:00:00Z", status.Timestamp)

	unconfigured := newTestService(&fakeCompleter{hasKey: false})
	assert.Equal(t, entities.HealthStatusUnhealthy, unconfigured.HealthCheck().Status)
}
