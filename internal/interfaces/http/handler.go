package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler exposes the liveness routes the hosting platform probes.
type Handler struct {
	startedAt time.Time
	botName   string
}

func NewHandler(botName string) *Handler {
	return &Handler{
		startedAt: time.Now(),
		botName:   botName,
	}
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.Health)
	r.GET("/status", h.Status)
}

// RunBackground starts the server in its own goroutine. onFail is
// called if it stops with an error, so the caller can shut down
// gracefully instead of exiting mid-flight.
func RunBackground(r *gin.Engine, addr string, onFail func(error)) {
	go func() {
		if err := r.Run(addr); err != nil {
			onFail(err)
		}
	}()
}

// Health confirms the process is alive.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status adds uptime and the bot identity. No business data.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"bot":            "@" + h.botName,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}
