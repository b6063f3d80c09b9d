package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/due-reminders/internal/reminder"
	"github.com/valeriaulyamaeva/due-reminders/internal/service"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

// Stable error codes returned in the "code" field of every error response.
const (
	CodeInvalidRequest           = "invalid_request"
	CodeNotFound                 = "not_found"
	CodeNotificationsUnavailable = "notifications_unavailable"
	CodeMuteUnavailable          = "mute_unavailable"
	CodeDueRecordsUnavailable    = "due_records_unavailable"
	CodeScanInProgress           = "scan_in_progress"
	CodeScanFailed               = "scan_failed"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Code: code, Error: message})
}

// abortWithServiceError maps service errors to a status and code. fallback is used for unknown errors.
func abortWithServiceError(c *gin.Context, err error, fallback string) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	switch {
	case errors.Is(err, models.ErrNotFound):
		abortWithError(c, http.StatusNotFound, CodeNotFound, "Record not found")
	case errors.Is(err, service.ErrMuteUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, CodeMuteUnavailable, "Mute setting is unavailable")
	case errors.Is(err, reminder.ErrScanInProgress):
		abortWithError(c, http.StatusConflict, CodeScanInProgress, "A reminder scan is already running")
	default:
		abortWithError(c, http.StatusInternalServerError, fallback, "Request could not be completed")
	}
}
