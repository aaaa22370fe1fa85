package handlers

import (
	"errors"
	"net/http"

	partner "github.com/SachinKokare07/partner-app/services/partner"
	"github.com/SachinKokare07/partner-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler exposes partner pairing endpoints.
type PartnerHandler struct {
	PartnerService partner.PartnerService
}

func NewPartnerHandler(svc partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{PartnerService: svc}
}

func callerID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return "", false
	}
	return idStr, true
}

// SendRequestHandler handles POST /api/partners/request.
func (h *PartnerHandler) SendRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.PartnerService.SendRequest(caller, req.Email); err != nil {
		switch {
		case errors.Is(err, partner.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No user found with this email"})
		case errors.Is(err, partner.ErrSelfRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot send a request to yourself"})
		case errors.Is(err, partner.ErrAlreadyRequested):
			c.JSON(http.StatusConflict, gin.H{"error": "Request already sent"})
		default:
			logger.Error("Failed to send partner request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send request"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner request sent"})
}

// AcceptRequestHandler handles POST /api/partners/accept.
func (h *PartnerHandler) AcceptRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		FromID string `json:"fromId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.PartnerService.AcceptRequest(caller, req.FromID); err != nil {
		switch {
		case errors.Is(err, partner.ErrNoRequest):
			c.JSON(http.StatusNotFound, gin.H{"error": "No pending request from this user"})
		case errors.Is(err, partner.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			logger.Error("Failed to accept partner request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept request"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner request accepted"})
}

// RejectRequestHandler handles POST /api/partners/reject.
func (h *PartnerHandler) RejectRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		FromID string `json:"fromId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.PartnerService.RejectRequest(caller, req.FromID); err != nil {
		switch {
		case errors.Is(err, partner.ErrNoRequest):
			c.JSON(http.StatusNotFound, gin.H{"error": "No pending request from this user"})
		default:
			logger.Error("Failed to reject partner request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner request rejected"})
}

// RemovePartnerHandler handles DELETE /api/partners.
func (h *PartnerHandler) RemovePartnerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.PartnerService.RemovePartner(caller); err != nil {
		switch {
		case errors.Is(err, partner.ErrNoPartner):
			c.JSON(http.StatusNotFound, gin.H{"error": "You do not have a partner"})
		default:
			logger.Error("Failed to remove partner", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove partner"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner removed"})
}

// ListRequestsHandler handles GET /api/partners/requests.
func (h *PartnerHandler) ListRequestsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	requests, err := h.PartnerService.ListRequests(caller)
	if err != nil {
		logger.Error("Failed to list partner requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// CurrentPartnerHandler handles GET /api/partners/current.
func (h *PartnerHandler) CurrentPartnerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	current, err := h.PartnerService.CurrentPartner(caller)
	if err != nil {
		logger.Error("Failed to fetch current partner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": current})
}
