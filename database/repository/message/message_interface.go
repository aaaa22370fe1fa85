package messageRepo

import "github.com/SachinKokare07/partner-app/models"

// MessageRepository defines methods for chat message access. Conversation
// reads are filtered server-side by the two participant ids; there is no
// full-collection scan path.
type MessageRepository interface {
	// Insert stores a new message.
	Insert(msg *models.Message) error
	// GetByID retrieves a message. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Message, error)
	// Conversation returns up to limit messages exchanged between the two
	// accounts, oldest first.
	Conversation(userA, userB string, limit int64) ([]models.Message, error)
	// CounterpartIDs returns the distinct ids this user has exchanged
	// messages with.
	CounterpartIDs(userID string) ([]string, error)
	// Delete removes a message by id.
	Delete(id string) error
}
