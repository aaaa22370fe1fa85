package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Chat errors surfaced to the user.
var (
	// ErrEmptyMessage rejects blank bodies.
	ErrEmptyMessage = errors.New("message cannot be empty")
	// ErrInvalidType rejects unknown message types.
	ErrInvalidType = errors.New("invalid message type")
	// ErrReceiverNotFound means the receiving account does not exist.
	ErrReceiverNotFound = errors.New("receiver not found")
	// ErrMessageNotFound means no such message exists.
	ErrMessageNotFound = errors.New("message not found")
	// ErrNotSender rejects deleting someone else's message.
	ErrNotSender = errors.New("only the sender can delete a message")
)

// Send validates and stores a message, denormalizing both display names so
// conversation reads need no user lookups.
func (s *DefaultChatService) Send(callerID, receiverID, body, msgType string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if msgType == "" {
		msgType = models.MessageTypeMessage
	}
	if !models.ValidMessageType(msgType) {
		return nil, ErrInvalidType
	}

	sender, err := s.Users.GetByID(callerID)
	if err != nil || sender == nil {
		utils.GetLogger().Error("Send: failed to fetch sender", zap.Error(err))
		return nil, fmt.Errorf("failed to send message, please try again")
	}
	receiver, err := s.Users.GetByID(receiverID)
	if err != nil {
		utils.GetLogger().Error("Send: failed to fetch receiver", zap.Error(err))
		return nil, fmt.Errorf("failed to send message, please try again")
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	msg := &models.Message{
		ID:           uuid.New().String(),
		SenderID:     sender.ID,
		SenderName:   sender.Name,
		ReceiverID:   receiver.ID,
		ReceiverName: receiver.Name,
		Message:      body,
		Type:         msgType,
		CreatedAt:    time.Now(),
	}
	if err := s.Messages.Insert(msg); err != nil {
		utils.GetLogger().Error("Send: failed to store message", zap.Error(err))
		return nil, fmt.Errorf("failed to send message, please try again")
	}

	if s.Notify != nil {
		title := sender.Name
		if msg.Type == models.MessageTypeAchievement {
			title = fmt.Sprintf("%s unlocked an achievement!", sender.Name)
		}
		s.Notify.PushToUser(receiver.ID, title, body, map[string]string{
			"type":     "chat_" + msg.Type,
			"senderId": sender.ID,
		})
	}
	return msg, nil
}

// Conversation returns the two-party history, oldest first.
func (s *DefaultChatService) Conversation(callerID, partnerID string, limit int64) ([]models.Message, error) {
	msgs, err := s.Messages.Conversation(callerID, partnerID, limit)
	if err != nil {
		utils.GetLogger().Error("Conversation: query failed", zap.Error(err))
		return nil, fmt.Errorf("failed to load messages, please try again")
	}
	return msgs, nil
}

// ChatPartners resolves everyone the caller has messaged with, plus the
// current partner even when no message has been exchanged yet.
func (s *DefaultChatService) ChatPartners(callerID string) ([]models.User, error) {
	ids, err := s.Messages.CounterpartIDs(callerID)
	if err != nil {
		utils.GetLogger().Error("ChatPartners: counterpart query failed", zap.Error(err))
		return nil, fmt.Errorf("failed to load chat partners, please try again")
	}

	caller, err := s.Users.GetByID(callerID)
	if err != nil {
		utils.GetLogger().Error("ChatPartners: failed to fetch caller", zap.Error(err))
		return nil, fmt.Errorf("failed to load chat partners, please try again")
	}
	if caller != nil && caller.Partner != "" {
		found := false
		for _, id := range ids {
			if id == caller.Partner {
				found = true
				break
			}
		}
		if !found {
			ids = append(ids, caller.Partner)
		}
	}

	partners := make([]models.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.Users.GetByID(id)
		if err != nil {
			utils.GetLogger().Warn("ChatPartners: failed to resolve user",
				zap.String("id", id), zap.Error(err))
			continue
		}
		if u == nil {
			continue
		}
		partners = append(partners, *u)
	}
	return partners, nil
}

// Delete removes one of the caller's own messages.
func (s *DefaultChatService) Delete(callerID, messageID string) error {
	msg, err := s.Messages.GetByID(messageID)
	if err != nil {
		utils.GetLogger().Error("Delete: failed to fetch message", zap.Error(err))
		return fmt.Errorf("failed to delete message, please try again")
	}
	if msg == nil {
		return ErrMessageNotFound
	}
	if msg.SenderID != callerID {
		return ErrNotSender
	}
	if err := s.Messages.Delete(messageID); err != nil {
		utils.GetLogger().Error("Delete: failed to delete message", zap.Error(err))
		return fmt.Errorf("failed to delete message, please try again")
	}
	return nil
}
