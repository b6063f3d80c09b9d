package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/due-reminders/internal/reminder"
)

type ScanTrigger interface {
	RunNow(ctx context.Context) (reminder.Summary, error)
}

// RunReminderScanHandler runs a reminder scan immediately and returns its summary.
func RunReminderScanHandler(trigger ScanTrigger) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := trigger.RunNow(c.Request.Context())
		if err != nil {
			abortWithServiceError(c, err, CodeScanFailed)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
