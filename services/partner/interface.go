package partner

import (
	userRepo "github.com/SachinKokare07/partner-app/database/repository/user"
	"github.com/SachinKokare07/partner-app/models"
)

// PartnerService manages directed pairing requests and the mutual partner
// relationship. Callers are always authenticated; the middleware supplies
// the caller id.
type PartnerService interface {
	// SendRequest adds the caller to the target's pending request set.
	SendRequest(callerID, targetEmail string) error
	// AcceptRequest pairs the caller with the requester and clears the
	// pending entry. Reapplying the same accept is safe.
	AcceptRequest(callerID, fromID string) error
	// RejectRequest drops the pending entry; the requester is untouched.
	RejectRequest(callerID, fromID string) error
	// RemovePartner dissolves the pairing on both sides.
	RemovePartner(callerID string) error
	// ListRequests resolves the caller's pending requests to sender views.
	ListRequests(callerID string) ([]models.PendingRequestView, error)
	// CurrentPartner returns the caller's partner profile, or nil when
	// unpaired.
	CurrentPartner(callerID string) (*models.User, error)
}

// Notifier delivers best-effort pushes about pairing events.
type Notifier interface {
	PushToUser(userID, title, body string, data map[string]string)
}

// DefaultPartnerService is the production implementation.
type DefaultPartnerService struct {
	Repo userRepo.UserRepository
	// Notify is optional; pairing works without pushes.
	Notify Notifier
}
