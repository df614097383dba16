package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-processor/errors"
	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
	"github.com/johnquangdev/transcript-processor/internal/infrastructure/metrics"
	"github.com/johnquangdev/transcript-processor/internal/usecase/export"
)

const (
	docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	pdfMIME  = "application/pdf"
)

// ExportHandler turns a MinutesRecord back into downloadable documents
type ExportHandler struct {
	logger *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(logger *zap.Logger) *ExportHandler {
	return &ExportHandler{logger: logger}
}

// GenerateDoc renders the posted record as a DOCX attachment
func (h *ExportHandler) GenerateDoc(c echo.Context) error {
	var record entities.MinutesRecord
	if err := c.Bind(&record); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	buf, err := export.RenderDocx(&record)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrExportFailed("docx", err))
	}

	metrics.ExportsTotal.WithLabelValues("docx").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=meeting_minutes.docx`)
	return c.Blob(http.StatusOK, docxMIME, buf)
}

// GeneratePdf renders the posted record as a PDF attachment
func (h *ExportHandler) GeneratePdf(c echo.Context) error {
	var record entities.MinutesRecord
	if err := c.Bind(&record); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	buf, err := export.RenderPdf(&record)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrExportFailed("pdf", err))
	}

	metrics.ExportsTotal.WithLabelValues("pdf").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=meeting_minutes.pdf`)
	return c.Blob(http.StatusOK, pdfMIME, buf)
}
