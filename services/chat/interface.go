package chat

import (
	messageRepo "github.com/SachinKokare07/partner-app/database/repository/message"
	userRepo "github.com/SachinKokare07/partner-app/database/repository/user"
	"github.com/SachinKokare07/partner-app/models"
)

// ChatService exchanges messages and progress updates between accounts.
// Conversation reads are always filtered by the two participant ids on the
// server side.
type ChatService interface {
	// Send stores a message from the caller to the receiver.
	Send(callerID, receiverID, body, msgType string) (*models.Message, error)
	// Conversation returns up to limit messages between the caller and the
	// given account, oldest first.
	Conversation(callerID, partnerID string, limit int64) ([]models.Message, error)
	// ChatPartners lists the accounts the caller has exchanged messages
	// with, the current partner included.
	ChatPartners(callerID string) ([]models.User, error)
	// Delete removes one of the caller's own messages.
	Delete(callerID, messageID string) error
}

// Notifier delivers best-effort pushes for incoming messages.
type Notifier interface {
	PushToUser(userID, title, body string, data map[string]string)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Messages messageRepo.MessageRepository
	Users    userRepo.UserRepository
	// Notify is optional; chat works without pushes.
	Notify Notifier
}
