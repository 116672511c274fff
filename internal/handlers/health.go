package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	apiURL  string
	started time.Time
}

func NewHealthHandler(apiURL string) *HealthHandler {
	return &HealthHandler{apiURL: apiURL, started: time.Now()}
}

// Health reports liveness. It does not call the Report API.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "facilitywatch-web",
		"api_url":   h.apiURL,
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
