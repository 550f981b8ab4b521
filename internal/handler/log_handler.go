package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteLog request body. Both fields are optional; pointers keep an
// explicit empty string distinct from an absent field.
type WriteLogRequest struct {
	Message   *string `json:"message" example:"round started"`
	Timestamp *string `json:"timestamp" example:"2026-08-30T12:00:00Z"`
}

// WriteLog godoc
// @Summary      Append a client-side event to the server log
// @Description  Lenient by design: a missing or malformed body is replaced
// @Description  with defaults and the call still succeeds.
// @Tags         Logs
// @Accept       json
// @Produce      json
// @Param        request body handler.WriteLogRequest false "event payload"
// @Success      200 {object} object{status=string}
// @Router       /api/log [post]
func (h *Handler) WriteLog(c *gin.Context) {
	message := "[no message]"
	timestamp := ""

	if rawData, err := c.GetRawData(); err == nil && len(rawData) > 0 {
		var body WriteLogRequest
		if err := json.Unmarshal(rawData, &body); err == nil {
			if body.Message != nil {
				message = *body.Message
			}
			if body.Timestamp != nil {
				timestamp = *body.Timestamp
			}
		}
	}

	h.logger.Info("client log",
		zap.String("client_timestamp", timestamp),
		zap.String("message", message))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
