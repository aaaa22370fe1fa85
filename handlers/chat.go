package handlers

import (
	"errors"
	"net/http"
	"strconv"

	chat "github.com/SachinKokare07/partner-app/services/chat"
	"github.com/SachinKokare07/partner-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes messaging endpoints.
type ChatHandler struct {
	ChatService chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: svc}
}

// SendMessageHandler handles POST /api/chat/send.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		ReceiverID string `json:"receiverId" binding:"required"`
		Message    string `json:"message" binding:"required"`
		Type       string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.ChatService.Send(caller, req.ReceiverID, req.Message, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrInvalidType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, chat.ErrReceiverNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		default:
			logger.Error("Failed to send message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		}
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ConversationHandler handles GET /api/chat/conversation/:partnerId.
// An optional "limit" query caps the number of returned messages.
func (h *ChatHandler) ConversationHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	partnerID := c.Param("partnerId")
	var limit int64 = 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	messages, err := h.ChatService.Conversation(caller, partnerID, limit)
	if err != nil {
		logger.Error("Failed to load conversation", zap.String("partnerId", partnerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// ChatPartnersHandler handles GET /api/chat/partners.
func (h *ChatHandler) ChatPartnersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	partners, err := h.ChatService.ChatPartners(caller)
	if err != nil {
		logger.Error("Failed to list chat partners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list chat partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// DeleteMessageHandler handles DELETE /api/chat/message/:id.
func (h *ChatHandler) DeleteMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	caller, ok := callerID(c)
	if !ok {
		return
	}

	messageID := c.Param("id")
	if err := h.ChatService.Delete(caller, messageID); err != nil {
		switch {
		case errors.Is(err, chat.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, chat.ErrNotSender):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own messages"})
		default:
			logger.Error("Failed to delete message", zap.String("id", messageID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
