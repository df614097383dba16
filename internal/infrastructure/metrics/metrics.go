package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Extraction path labels
const (
	PathPrimary  = "primary"
	PathFallback = "fallback"
)

var (
	// ExtractionsTotal counts processed transcripts by extraction path
	ExtractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transcript_processor",
		Name:      "extractions_total",
		Help:      "Number of transcripts processed, labeled by extraction path.",
	}, []string{"path"})

	// ExtractionDuration observes end-to-end Process latency in seconds
	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "transcript_processor",
		Name:      "extraction_duration_seconds",
		Help:      "End-to-end transcript processing latency.",
		Buckets:   prometheus.DefBuckets,
	})

	// ExportsTotal counts generated documents by format
	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transcript_processor",
		Name:      "exports_total",
		Help:      "Number of documents generated, labeled by format.",
	}, []string{"format"})
)
