package userRepo

import (
	"github.com/SachinKokare07/partner-app/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access. Mutations are
// field-targeted merges so concurrent writers on unrelated fields are never
// lost; pending-request updates use set primitives rather than
// read-modify-write.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no account matches.
	GetByEmail(email string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a targeted $set merge of the given fields.
	UpdateFields(id string, fields bson.M) error
	// AddPendingRequest adds fromID to the target's pending request set.
	// Duplicate adds are a no-op.
	AddPendingRequest(targetID, fromID string) error
	// RemovePendingRequest removes fromID from the target's pending request set.
	RemovePendingRequest(targetID, fromID string) error
	// SetPartner sets (or clears, with an empty string) the partner field.
	SetPartner(id, partnerID string) error
}
