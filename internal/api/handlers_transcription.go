// handlers_transcription.go - Transcription operation handlers
package api

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/voicescribe/backend/internal/models"
	"github.com/voicescribe/backend/internal/speech"
	"github.com/voicescribe/backend/internal/store"
)

// HandleTranscribe accepts an audio/video upload, runs speech recognition on
// it and stores the resulting transcription record.
func (h *Handler) HandleTranscribe(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}

	language := c.FormValue("language")
	if language == "" {
		language = speech.LanguageAuto
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if apiErr := validateUpload(fileHeader.Filename, contentType, fileHeader.Size); apiErr != nil {
		return apiErr
	}

	src, err := fileHeader.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	// The upload is spooled to a temporary file for the recognition call and
	// removed on every exit path.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return NewInternalError("failed to create temporary file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, src)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return NewInternalError("failed to write temporary file", err)
	}

	result, err := h.speech.Transcribe(c.Request().Context(), speech.Request{
		AudioPath: tmpPath,
		Filename:  fileHeader.Filename,
		Language:  language,
	})
	if err != nil {
		return NewInternalError("transcription failed", err)
	}

	rec := &models.Transcription{
		ID:        uuid.New().String(),
		Text:      result.Text,
		Language:  language,
		Filename:  fileHeader.Filename,
		FileSize:  size,
		Timestamp: time.Now().UTC(),
	}

	if err := h.store.CreateTranscription(c.Request().Context(), rec); err != nil {
		return NewInternalError("failed to save transcription", err)
	}

	return c.JSON(http.StatusOK, rec)
}

// HandleListTranscriptions returns stored transcriptions, newest first.
func (h *Handler) HandleListTranscriptions(c echo.Context) error {
	recs, err := h.store.ListTranscriptions(c.Request().Context(), transcriptionListLimit)
	if err != nil {
		return NewInternalError("failed to list transcriptions", err)
	}
	return c.JSON(http.StatusOK, recs)
}

// HandleGetTranscription returns a single transcription by id.
func (h *Handler) HandleGetTranscription(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	rec, err := h.store.GetTranscription(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return NewNotFoundError("transcription", id)
	}
	if err != nil {
		return NewInternalError("failed to retrieve transcription", err)
	}

	return c.JSON(http.StatusOK, rec)
}

// HandleDeleteTranscription removes a transcription and its summaries.
func (h *Handler) HandleDeleteTranscription(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	err := h.store.DeleteTranscription(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return NewNotFoundError("transcription", id)
	}
	if err != nil {
		return NewInternalError("failed to delete transcription", err)
	}

	// Summaries referencing the transcription go with it.
	if err := h.store.DeleteSummariesByTranscription(c.Request().Context(), id); err != nil {
		return NewInternalError("failed to delete summaries", err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Transcription deleted successfully",
	})
}
