package handler

import (
	"net/http"
	"strconv"

	"github.com/ayushh0406/swap-seva-odoo1/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler interface {
	Stats(c *gin.Context)
	Activities(c *gin.Context)
}

type dashboardHandler struct {
	service service.DashboardService
	logger  *zap.Logger
}

func NewDashboardHandler(service service.DashboardService, logger *zap.Logger) DashboardHandler {
	return &dashboardHandler{
		service: service,
		logger:  logger,
	}
}

func (h *dashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

func (h *dashboardHandler) Activities(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if err != nil || limit < 1 {
		limit = 4
	}

	activities, err := h.service.RecentActivities(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    activities,
	})
}
