package handler

import (
	"net/http"
	"strconv"

	"github.com/ayushh0406/swap-seva-odoo1/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ConnectionHandler interface {
	SendRequest(c *gin.Context)
	AcceptRequest(c *gin.Context)
	MyConnections(c *gin.Context)
}

type connectionHandler struct {
	service service.ConnectionService
	logger  *zap.Logger
}

func NewConnectionHandler(service service.ConnectionService, logger *zap.Logger) ConnectionHandler {
	return &connectionHandler{
		service: service,
		logger:  logger,
	}
}

func (h *connectionHandler) SendRequest(c *gin.Context) {
	var req struct {
		RecipientID string `json:"recipientId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "recipientId is required"})
		return
	}

	if err := h.service.SendRequest(c.Request.Context(), currentUserID(c), req.RecipientID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Connection request sent successfully",
	})
}

func (h *connectionHandler) AcceptRequest(c *gin.Context) {
	var req struct {
		NotificationID string `json:"notificationId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NotificationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "notificationId is required"})
		return
	}

	if err := h.service.AcceptRequest(c.Request.Context(), currentUserID(c), req.NotificationID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Connection request accepted",
	})
}

func (h *connectionHandler) MyConnections(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid page number"})
		return
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
		return
	}

	result, err := h.service.Connections(c.Request.Context(), currentUserID(c), page, limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"connections": result.Connections,
		"pagination":  result.Pagination,
	})
}
