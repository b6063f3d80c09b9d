package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

type DueRecordReader interface {
	DueRecords(ctx context.Context, scope string, status models.DueStatus) ([]models.DueRecord, error)
}

// GetDueRecordsHandler lists due records, optionally filtered by scope and status.
func GetDueRecordsHandler(reader DueRecordReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.DueStatus(c.Query("status"))
		if status != "" && status != models.StatusDue && status != models.StatusPaid {
			abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, "status must be due or paid")
			return
		}
		records, err := reader.DueRecords(c.Request.Context(), c.Query("scope"), status)
		if err != nil {
			abortWithServiceError(c, err, CodeDueRecordsUnavailable)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
