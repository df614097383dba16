package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-processor/errors"
	dto "github.com/johnquangdev/transcript-processor/internal/adapter/dto/minutes"
	minutesuse "github.com/johnquangdev/transcript-processor/internal/usecase/minutes"
)

// MinutesHandler exposes transcript processing over HTTP
type MinutesHandler struct {
	svc    minutesuse.Service
	logger *zap.Logger
}

// NewMinutesHandler creates a new minutes handler
func NewMinutesHandler(svc minutesuse.Service, logger *zap.Logger) *MinutesHandler {
	return &MinutesHandler{svc: svc, logger: logger}
}

// ProcessTranscript converts a raw transcript into structured minutes.
// The response body is the MinutesRecord itself, not an envelope: the
// record is the download payload the frontend renders and re-submits to
// the export endpoints.
func (h *MinutesHandler) ProcessTranscript(c echo.Context) error {
	var req dto.ProcessTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrMissingTranscript())
	}

	h.logger.Info("processing transcript",
		zap.String("request_id", getRequestID(c)),
		zap.Int("transcript_length", len(req.Transcript)),
	)

	record := h.svc.Process(c.Request().Context(), strings.TrimSpace(req.Transcript))
	return c.JSON(http.StatusOK, record)
}

// Health reports extractor configuration readiness
func (h *MinutesHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.HealthCheck())
}
