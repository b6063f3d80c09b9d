package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/due-reminders/internal/handlers"
)

type Dependencies struct {
	Notifications handlers.NotificationService
	DueRecords    handlers.DueRecordReader
	Scans         handlers.ScanTrigger
	DB            handlers.Pinger
}

func CORSMiddleware(allowedOrigins ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

func SetupRouter(deps Dependencies, allowedOrigins ...string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), CORSMiddleware(allowedOrigins...))

	r.GET("/health", handlers.HealthHandler(deps.DB))

	r.GET("/notifications", handlers.GetNotificationsHandler(deps.Notifications))
	r.GET("/notifications/unread-count", handlers.GetUnreadCountHandler(deps.Notifications))
	r.PATCH("/notifications/read-all", handlers.MarkAllNotificationsAsReadHandler(deps.Notifications))
	r.PATCH("/notifications/:id/read", handlers.MarkNotificationAsReadHandler(deps.Notifications))
	r.DELETE("/notifications/:id", handlers.DeleteNotificationHandler(deps.Notifications))

	r.GET("/mute/:scope", handlers.GetMuteHandler(deps.Notifications))
	r.PATCH("/mute/:scope", handlers.UpdateMuteHandler(deps.Notifications))

	r.GET("/due-records", handlers.GetDueRecordsHandler(deps.DueRecords))
	r.POST("/reminders/scan", handlers.RunReminderScanHandler(deps.Scans))

	return r
}
