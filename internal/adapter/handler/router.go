package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnquangdev/transcript-processor/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	minutesHandler *MinutesHandler
	exportHandler  *ExportHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, minutesHandler *MinutesHandler, exportHandler *ExportHandler) *Router {
	return &Router{
		cfg:            cfg,
		minutesHandler: minutesHandler,
		exportHandler:  exportHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/ai-minutes", rt.minutesHandler.ProcessTranscript)
	api.GET("/health", rt.minutesHandler.Health)
	api.POST("/generate-doc", rt.exportHandler.GenerateDoc)
	api.POST("/generate-pdf", rt.exportHandler.GeneratePdf)
}
