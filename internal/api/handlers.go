package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voicescribe/backend/internal/speech"
	"github.com/voicescribe/backend/internal/store"
	"github.com/voicescribe/backend/internal/summarize"
)

// List caps per collection, matching the store's documented page sizes.
const (
	statusCheckListLimit   = 1000
	transcriptionListLimit = 100
	summaryListLimit       = 100
)

// Handler handles API requests.
type Handler struct {
	store      store.Store
	speech     speech.Provider
	summarizer summarize.Provider
	version    string
}

// NewHandler creates a new API handler with its injected dependencies.
func NewHandler(st store.Store, sp speech.Provider, sm summarize.Provider, version string) *Handler {
	return &Handler{
		store:      st,
		speech:     sp,
		summarizer: sm,
		version:    version,
	}
}

// HandleRoot returns the API greeting.
func (h *Handler) HandleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Voicescribe API - ready to transcribe",
	})
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}
