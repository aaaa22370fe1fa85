package models

import "time"

// Message types. Updates and achievements render differently in the client
// but share the message pipeline.
const (
	MessageTypeMessage     = "message"
	MessageTypeUpdate      = "update"
	MessageTypeAchievement = "achievement"
)

// Message is one chat entry between two accounts. Sender and receiver names
// are denormalized so conversation views need no extra user lookups.
type Message struct {
	ID           string    `bson:"id" json:"id"`
	SenderID     string    `bson:"sender_id" json:"senderId"`
	SenderName   string    `bson:"sender_name" json:"senderName"`
	ReceiverID   string    `bson:"receiver_id" json:"receiverId"`
	ReceiverName string    `bson:"receiver_name" json:"receiverName"`
	Message      string    `bson:"message" json:"message"`
	Type         string    `bson:"type" json:"type"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// ValidMessageType reports whether t is one of the known message types.
func ValidMessageType(t string) bool {
	switch t {
	case MessageTypeMessage, MessageTypeUpdate, MessageTypeAchievement:
		return true
	}
	return false
}
