package approuters

import (
	"github.com/ayushh0406/swap-seva-odoo1/internal/configuration"

	"github.com/gin-gonic/gin"
)

func ConnectionRouters(router *gin.Engine, container *configuration.Container) {
	connectionRoute := router.Group("/api/connections", container.JWT.Middleware())
	{
		connectionRoute.POST("/send-request", container.ConnectionHandler.SendRequest)
		connectionRoute.POST("/accept-request", container.ConnectionHandler.AcceptRequest)
		connectionRoute.GET("/my-connections", container.ConnectionHandler.MyConnections)
	}
}
