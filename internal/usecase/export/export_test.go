package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
)

func sampleRecord() *entities.MinutesRecord {
	return &entities.MinutesRecord{
		Summary:      []string{"Budget approved", "Hiring plan discussed"},
		Decisions:    []string{"Adopt the new CI pipeline"},
		Agenda:       []string{"Budget", "Hiring"},
		Participants: []string{"Alice", "Bob"},
		Topics:       []entities.TopicScore{{Topic: "Finance", Confidence: 0.85}},
		ActionItems: []entities.ActionItem{
			{Task: "Send budget sheet", Owner: "Alice", Deadline: "Friday", Status: "Pending"},
			{Task: "Schedule interviews", Owner: "Bob"},
		},
		ProcessedAt: "2025-06-01T12:00:00Z",
		ModelUsed:   "openai/gpt-4o-mini",
	}
}

func docxDocumentXML(t *testing.T, buf []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(content)
		}
	}
	t.Fatal("word/document.xml not found in package")
	return ""
}

func TestRenderDocx(t *testing.T) {
	buf, err := RenderDocx(sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	doc := docxDocumentXML(t, buf)
	assert.Contains(t, doc, "Meeting Minutes")
	assert.Contains(t, doc, "Generated on: 2025-06-01T12:00:00Z")
	assert.Contains(t, doc, "Processed by: openai/gpt-4o-mini")
	assert.Contains(t, doc, "Participants")
	assert.Contains(t, doc, "Finance (Confidence: 85.0%)")
	assert.Contains(t, doc, "Decisions Made")
	assert.Contains(t, doc, "<w:tbl>")
	assert.Contains(t, doc, "Send budget sheet")

	// Blank deadline/status fall back to the record defaults
	assert.Contains(t, doc, "Not specified")
	assert.Contains(t, doc, "Pending")
}

func TestRenderDocx_OmitsEmptySections(t *testing.T) {
	rec := sampleRecord()
	rec.Decisions = []string{}
	rec.ActionItems = nil

	buf, err := RenderDocx(rec)
	require.NoError(t, err)

	doc := docxDocumentXML(t, buf)
	assert.NotContains(t, doc, "Decisions Made")
	assert.NotContains(t, doc, "Action Items")
	assert.NotContains(t, doc, "<w:tbl>")
}

func TestRenderDocx_EscapesMarkup(t *testing.T) {
	rec := sampleRecord()
	rec.Summary = []string{`Discussed <budget> & "plans"`}

	buf, err := RenderDocx(rec)
	require.NoError(t, err)

	doc := docxDocumentXML(t, buf)
	assert.Contains(t, doc, "&lt;budget&gt; &amp;")
	assert.NotContains(t, doc, "<budget>")
}

func TestRenderPdf(t *testing.T) {
	buf, err := RenderPdf(sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, buf)
	assert.True(t, strings.HasPrefix(string(buf[:8]), "%PDF"), "output should start with a PDF header")
}

func TestRenderPdf_MinimalRecord(t *testing.T) {
	rec := &entities.MinutesRecord{
		Summary:      []string{},
		Decisions:    []string{},
		Agenda:       []string{},
		Participants: []string{},
		Topics:       []entities.TopicScore{},
		ActionItems:  []entities.ActionItem{},
		ProcessedAt:  "2025-06-01T12:00:00Z",
		ModelUsed:    entities.ModelUsedFallback,
	}

	buf, err := RenderPdf(rec)
	require.NoError(t, err)
	assert.NotEmpty(t, buf)
}
