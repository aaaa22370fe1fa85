package handlers

import (
	"errors"
	"net/http"

	user "github.com/SachinKokare07/partner-app/services/user"
	"github.com/SachinKokare07/partner-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	idStr, ok := id.(string)
	if !ok {
		logger.Error("Invalid user ID type", zap.Any("userID", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return
	}
	usr, err := h.UserService.GetUserByID(idStr)
	if err != nil {
		logger.Error("User not found", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetUserByEmailHandler handles GET /api/users/email/:email.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Param("email")
	usr, err := h.UserService.GetUserByEmail(email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			logger.Error("User lookup by email failed", zap.String("email", email), zap.Error(err))
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// RevokeUserAuthTokenHandler handles POST /api/users/logout.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.UserService.RevokeAuthToken(id.(string)); err != nil {
		logger.Error("Failed to revoke auth token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// UpdateFCMTokenHandler handles PUT /api/users/fcm-token.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.UpdateFCMToken(id.(string), req.Token); err != nil {
		logger.Error("Failed to update FCM token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token updated"})
}
