package handler

import (
	"net/http"

	"github.com/ayushh0406/swap-seva-odoo1/internal/model"
	"github.com/ayushh0406/swap-seva-odoo1/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsHandler interface {
	GetSettings(c *gin.Context)
	UpdateProfile(c *gin.Context)
	UpdatePhoto(c *gin.Context)
	UpdateNotifications(c *gin.Context)
	UpdatePrivacy(c *gin.Context)
	ChangePassword(c *gin.Context)
	Download(c *gin.Context)
	DeleteAccount(c *gin.Context)
}

type settingsHandler struct {
	service service.SettingsService
	logger  *zap.Logger
}

func NewSettingsHandler(service service.SettingsService, logger *zap.Logger) SettingsHandler {
	return &settingsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *settingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.Settings(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

func (h *settingsHandler) UpdateProfile(c *gin.Context) {
	var req model.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

func (h *settingsHandler) UpdatePhoto(c *gin.Context) {
	var req struct {
		ProfilePhoto string `json:"profilePhoto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	photo, err := h.service.UpdatePhoto(c.Request.Context(), currentUserID(c), req.ProfilePhoto)
	if err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile photo uploaded successfully",
		"data":    gin.H{"profilePhoto": photo},
	})
}

// UpdateNotifications replaces the whole preference block; flags omitted from
// the request body come through as false.
func (h *settingsHandler) UpdateNotifications(c *gin.Context) {
	var req model.NotificationPrefs
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	prefs, err := h.service.UpdateNotifications(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification preferences updated successfully",
		"data":    prefs,
	})
}

func (h *settingsHandler) UpdatePrivacy(c *gin.Context) {
	var req model.PrivacyPrefs
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	prefs, err := h.service.UpdatePrivacy(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Privacy settings updated successfully",
		"data":    prefs,
	})
}

func (h *settingsHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}

func (h *settingsHandler) Download(c *gin.Context) {
	export, err := h.service.Export(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    export,
	})
}

func (h *settingsHandler) DeleteAccount(c *gin.Context) {
	if err := h.service.DeleteAccount(c.Request.Context(), currentUserID(c)); err != nil {
		handleSettingsError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account deleted successfully",
	})
}
