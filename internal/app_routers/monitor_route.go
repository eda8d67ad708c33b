package approuters

import (
	"github.com/ayushh0406/swap-seva-odoo1/internal/configuration"

	"github.com/gin-gonic/gin"
)

// MonitorRouters sets up monitoring API routes
func MonitorRouters(router *gin.Engine, container *configuration.Container) {
	monitorGroup := router.Group("/api/monitor")
	{
		// GET /api/monitor/health - Get service health
		monitorGroup.GET("/health", container.MonitorHandler.GetHealth)
	}
}
