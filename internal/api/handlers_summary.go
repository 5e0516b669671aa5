// handlers_summary.go - Summary operation handlers
package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/voicescribe/backend/internal/models"
	"github.com/voicescribe/backend/internal/store"
	"github.com/voicescribe/backend/internal/summarize"
)

// HandleSummarize generates and stores a structured summary of a
// transcription in the requested target language.
func (h *Handler) HandleSummarize(c echo.Context) error {
	var req summarizeRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	rec, err := h.store.GetTranscription(c.Request().Context(), req.TranscriptionID)
	if errors.Is(err, store.ErrNotFound) {
		return NewNotFoundError("transcription", req.TranscriptionID)
	}
	if err != nil {
		return NewInternalError("failed to retrieve transcription", err)
	}

	if strings.TrimSpace(rec.Text) == "" {
		return NewBadRequestError("transcription text is empty", nil)
	}

	result, err := h.summarizer.Summarize(c.Request().Context(), summarize.Request{
		Text:     rec.Text,
		Language: req.SummaryLanguage,
	})
	if err != nil {
		return NewInternalError("summary generation failed", err)
	}

	// The stored language is the requested code, not the prompt's resolved
	// display name.
	sum := &models.Summary{
		ID:              uuid.New().String(),
		TranscriptionID: req.TranscriptionID,
		Summary:         result.Summary,
		Language:        req.SummaryLanguage,
		Timestamp:       time.Now().UTC(),
	}

	if err := h.store.CreateSummary(c.Request().Context(), sum); err != nil {
		return NewInternalError("failed to save summary", err)
	}

	return c.JSON(http.StatusOK, sum)
}

// HandleListSummaries returns the summaries for a transcription, newest
// first. A transcription with no summaries yields an empty list.
func (h *Handler) HandleListSummaries(c echo.Context) error {
	transcriptionID := c.Param("transcriptionId")
	if transcriptionID == "" {
		return NewValidationError("transcriptionId")
	}

	sums, err := h.store.ListSummaries(c.Request().Context(), transcriptionID, summaryListLimit)
	if err != nil {
		return NewInternalError("failed to list summaries", err)
	}

	return c.JSON(http.StatusOK, sums)
}

// Request types

type summarizeRequest struct {
	TranscriptionID string `json:"transcription_id"`
	SummaryLanguage string `json:"summary_language"`
}

func (r *summarizeRequest) validate() error {
	if r.TranscriptionID == "" {
		return NewValidationError("transcription_id")
	}
	if r.SummaryLanguage == "" {
		return NewValidationError("summary_language")
	}
	return nil
}
