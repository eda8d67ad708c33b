package handler

import (
	"net/http"

	"github.com/ayushh0406/swap-seva-odoo1/internal/service"

	"github.com/gin-gonic/gin"
)

// MonitorHandler handles monitoring API endpoints
type MonitorHandler interface {
	GetHealth(c *gin.Context)
}

type monitorHandler struct {
	monitorService service.MonitorService
}

// NewMonitorHandler creates a new monitor handler
func NewMonitorHandler(monitorService service.MonitorService) MonitorHandler {
	return &monitorHandler{
		monitorService: monitorService,
	}
}

// GetHealth returns service status, database reachability and collection counts
func (h *monitorHandler) GetHealth(c *gin.Context) {
	health := h.monitorService.Health(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"HttpStatusCode": http.StatusOK,
		"ResponseBody":   health,
		"IsSuccess":      health.Status == "healthy",
		"Message":        "Service health retrieved successfully",
	})
}
