package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type muteRequest struct {
	Mute *bool `json:"mute"`
}

type muteResponse struct {
	IsMuted bool `json:"isMuted"`
}

func GetMuteHandler(svc NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		setting, err := svc.Mute(c.Request.Context(), c.Param("scope"))
		if err != nil {
			abortWithServiceError(c, err, CodeMuteUnavailable)
			return
		}
		c.JSON(http.StatusOK, muteResponse{IsMuted: setting.IsMuted})
	}
}

// UpdateMuteHandler toggles the mute flag, or sets it when the body carries "mute".
// An empty body is a toggle.
func UpdateMuteHandler(svc NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid input")
			return
		}
		var req muteRequest
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid input")
				return
			}
		}

		setting, err := svc.UpdateMute(c.Request.Context(), c.Param("scope"), req.Mute)
		if err != nil {
			abortWithServiceError(c, err, CodeMuteUnavailable)
			return
		}
		c.JSON(http.StatusOK, muteResponse{IsMuted: setting.IsMuted})
	}
}
