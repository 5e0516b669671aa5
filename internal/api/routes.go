// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/voicescribe/backend/internal/speech"
	"github.com/voicescribe/backend/internal/store"
	"github.com/voicescribe/backend/internal/summarize"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Store      store.Store
	Speech     speech.Provider
	Summarizer summarize.Provider
	Version    string
}

// NewHandlerFromDeps creates the API handler from a dependency bundle.
func NewHandlerFromDeps(deps *Dependencies) *Handler {
	return NewHandler(deps.Store, deps.Speech, deps.Summarizer, deps.Version)
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check
	e.GET("/health", h.HandleHealth)

	apiGroup := e.Group("/api")
	apiGroup.GET("/", h.HandleRoot)

	// Status checks
	apiGroup.POST("/status", h.HandleCreateStatus)
	apiGroup.GET("/status", h.HandleListStatus)

	// Transcriptions
	apiGroup.POST("/transcribe", h.HandleTranscribe)
	apiGroup.GET("/transcriptions", h.HandleListTranscriptions)
	apiGroup.GET("/transcriptions/:id", h.HandleGetTranscription)
	apiGroup.DELETE("/transcriptions/:id", h.HandleDeleteTranscription)

	// Summaries
	apiGroup.POST("/summarize", h.HandleSummarize)
	apiGroup.GET("/summaries/:transcriptionId", h.HandleListSummaries)
}
