package handler

import (
	"net/http"

	"github.com/ayushh0406/swap-seva-odoo1/internal/auth"
	"github.com/ayushh0406/swap-seva-odoo1/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// currentUserID reads the authenticated user ID placed in the context by the
// auth middleware
func currentUserID(c *gin.Context) string {
	return c.GetString(auth.UserIDKey)
}

func statusFor(e *service.Error) int {
	if e.Kind == service.KindNotFound {
		return http.StatusNotFound
	}
	// InvalidRequest and Conflict both map to 400
	return http.StatusBadRequest
}

// handleError converts a workflow error to its HTTP response; anything
// unexpected becomes a generic 500 with the cause logged.
func handleError(c *gin.Context, logger *zap.Logger, err error) {
	if e, ok := service.AsError(err); ok {
		c.JSON(statusFor(e), gin.H{"message": e.Message})
		return
	}

	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

// handleSettingsError is handleError with the settings envelope, which also
// carries success:false
func handleSettingsError(c *gin.Context, logger *zap.Logger, err error) {
	if e, ok := service.AsError(err); ok {
		c.JSON(statusFor(e), gin.H{"success": false, "message": e.Message})
		return
	}

	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}
