package approuters

import (
	"github.com/ayushh0406/swap-seva-odoo1/internal/configuration"

	"github.com/gin-gonic/gin"
)

func SettingsRouters(router *gin.Engine, container *configuration.Container) {
	settingsRoute := router.Group("/api/settings", container.JWT.Middleware())
	{
		settingsRoute.GET("", container.SettingsHandler.GetSettings)
		settingsRoute.PUT("/profile", container.SettingsHandler.UpdateProfile)
		settingsRoute.PUT("/profile/photo", container.SettingsHandler.UpdatePhoto)
		settingsRoute.PUT("/notifications", container.SettingsHandler.UpdateNotifications)
		settingsRoute.PUT("/privacy", container.SettingsHandler.UpdatePrivacy)
		settingsRoute.PUT("/password", container.SettingsHandler.ChangePassword)
		settingsRoute.GET("/download", container.SettingsHandler.Download)
		settingsRoute.DELETE("/account", container.SettingsHandler.DeleteAccount)
	}
}
