package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"clip-letter/broadcast"
	"clip-letter/internal/logger"
)

// heartbeatInterval keeps idle SSE connections from being reaped by
// intermediate proxies.
const heartbeatInterval = 15 * time.Second

// ReportEventsHandler godoc
// @Summary      Report event stream
// @Description  Server-sent events; emits report-added when an ingest completes. Best-effort: a slow reader loses the oldest queued events.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /report-events [get]
func ReportEventsHandler(hub *broadcast.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("X-Accel-Buffering", "no")

		sub := hub.Register()
		defer hub.Unregister(sub)

		logger.DebugWithFields("SSE 구독 시작", logger.Fields{
			"subscribers": hub.SubscriberCount(),
		})

		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		c.Stream(func(w io.Writer) bool {
			select {
			case msg := <-sub.C:
				c.SSEvent(msg.Event, msg.Data)
				return true
			case <-heartbeat.C:
				// comment 라인은 브라우저 EventSource 가 무시한다
				_, err := io.WriteString(w, ": ping\n\n")
				return err == nil
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
