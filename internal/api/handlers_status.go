// handlers_status.go - Status check operation handlers
package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/voicescribe/backend/internal/models"
)

// HandleCreateStatus records a diagnostic status check for a client.
func (h *Handler) HandleCreateStatus(c echo.Context) error {
	var req createStatusRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	check := &models.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := h.store.CreateStatusCheck(c.Request().Context(), check); err != nil {
		return NewInternalError("failed to save status check", err)
	}

	return c.JSON(http.StatusOK, check)
}

// HandleListStatus returns recorded status checks.
func (h *Handler) HandleListStatus(c echo.Context) error {
	checks, err := h.store.ListStatusChecks(c.Request().Context(), statusCheckListLimit)
	if err != nil {
		return NewInternalError("failed to list status checks", err)
	}
	return c.JSON(http.StatusOK, checks)
}

// Request types

type createStatusRequest struct {
	ClientName string `json:"client_name"`
}

func (r *createStatusRequest) validate() error {
	if r.ClientName == "" {
		return NewValidationError("client_name")
	}
	return nil
}
