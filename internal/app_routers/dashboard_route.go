package approuters

import (
	"github.com/ayushh0406/swap-seva-odoo1/internal/configuration"

	"github.com/gin-gonic/gin"
)

func DashboardRouters(router *gin.Engine, container *configuration.Container) {
	dashboardRoute := router.Group("/api/dashboard", container.JWT.Middleware())
	{
		dashboardRoute.GET("/stats", container.DashboardHandler.Stats)
		dashboardRoute.GET("/activities", container.DashboardHandler.Activities)
	}
}
