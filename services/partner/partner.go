package partner

import (
	"fmt"
	"slices"

	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/utils"

	"go.uber.org/zap"
)

// SendRequest records a directed pairing request. The write is an additive
// set update, so a race-retried duplicate stays a no-op.
func (s *DefaultPartnerService) SendRequest(callerID, targetEmail string) error {
	target, err := s.Repo.GetByEmail(targetEmail)
	if err != nil {
		utils.GetLogger().Error("SendRequest: failed to fetch target", zap.Error(err))
		return fmt.Errorf("failed to send request, please try again")
	}
	if target == nil {
		return ErrUserNotFound
	}
	if target.ID == callerID {
		return ErrSelfRequest
	}
	if slices.Contains(target.PendingRequests, callerID) {
		return ErrAlreadyRequested
	}

	if err := s.Repo.AddPendingRequest(target.ID, callerID); err != nil {
		utils.GetLogger().Error("SendRequest: failed to add pending request", zap.Error(err))
		return fmt.Errorf("failed to send request, please try again")
	}

	s.push(target.ID, "New partner request",
		"Someone wants to be your accountability partner!",
		map[string]string{"type": "partner_request", "from": callerID})
	return nil
}

// AcceptRequest pairs both accounts. The two documents are updated with
// sequential field-targeted writes; a crash between them leaves a transient
// half-applied pairing that converges when the accept is retried, since every
// write here is idempotent.
func (s *DefaultPartnerService) AcceptRequest(callerID, fromID string) error {
	caller, err := s.Repo.GetByID(callerID)
	if err != nil {
		utils.GetLogger().Error("AcceptRequest: failed to fetch caller", zap.Error(err))
		return fmt.Errorf("failed to accept request, please try again")
	}
	if caller == nil {
		return ErrUserNotFound
	}
	if !slices.Contains(caller.PendingRequests, fromID) && caller.Partner != fromID {
		return ErrNoRequest
	}

	from, err := s.Repo.GetByID(fromID)
	if err != nil {
		utils.GetLogger().Error("AcceptRequest: failed to fetch requester", zap.Error(err))
		return fmt.Errorf("failed to accept request, please try again")
	}
	if from == nil {
		return ErrUserNotFound
	}

	if err := s.Repo.SetPartner(callerID, fromID); err != nil {
		utils.GetLogger().Error("AcceptRequest: failed to set caller partner", zap.Error(err))
		return fmt.Errorf("failed to accept request, please try again")
	}
	if err := s.Repo.RemovePendingRequest(callerID, fromID); err != nil {
		utils.GetLogger().Error("AcceptRequest: failed to clear pending request", zap.Error(err))
		return fmt.Errorf("failed to accept request, please try again")
	}
	if err := s.Repo.SetPartner(fromID, callerID); err != nil {
		utils.GetLogger().Error("AcceptRequest: failed to set requester partner", zap.Error(err))
		return fmt.Errorf("failed to accept request, please try again")
	}

	s.push(fromID, "Partner request accepted",
		fmt.Sprintf("%s accepted your partner request!", caller.Name),
		map[string]string{"type": "partner_accepted", "from": callerID})
	return nil
}

// RejectRequest removes the pending entry only. The requester's document is
// untouched.
func (s *DefaultPartnerService) RejectRequest(callerID, fromID string) error {
	caller, err := s.Repo.GetByID(callerID)
	if err != nil {
		utils.GetLogger().Error("RejectRequest: failed to fetch caller", zap.Error(err))
		return fmt.Errorf("failed to reject request, please try again")
	}
	if caller == nil {
		return ErrUserNotFound
	}
	if !slices.Contains(caller.PendingRequests, fromID) {
		return ErrNoRequest
	}

	if err := s.Repo.RemovePendingRequest(callerID, fromID); err != nil {
		utils.GetLogger().Error("RejectRequest: failed to clear pending request", zap.Error(err))
		return fmt.Errorf("failed to reject request, please try again")
	}
	return nil
}

// RemovePartner clears both sides independently. Each write tolerates the
// other account having already changed state.
func (s *DefaultPartnerService) RemovePartner(callerID string) error {
	caller, err := s.Repo.GetByID(callerID)
	if err != nil {
		utils.GetLogger().Error("RemovePartner: failed to fetch caller", zap.Error(err))
		return fmt.Errorf("failed to remove partner, please try again")
	}
	if caller == nil {
		return ErrUserNotFound
	}
	if caller.Partner == "" {
		return ErrNoPartner
	}

	formerPartner := caller.Partner
	if err := s.Repo.SetPartner(callerID, ""); err != nil {
		utils.GetLogger().Error("RemovePartner: failed to clear caller partner", zap.Error(err))
		return fmt.Errorf("failed to remove partner, please try again")
	}
	if err := s.Repo.SetPartner(formerPartner, ""); err != nil {
		// The former partner may already be gone; log and move on.
		utils.GetLogger().Warn("RemovePartner: failed to clear former partner",
			zap.String("partnerID", formerPartner), zap.Error(err))
	}
	return nil
}

// ListRequests resolves pending request ids to sender name/email views.
// Senders whose accounts vanished are skipped.
func (s *DefaultPartnerService) ListRequests(callerID string) ([]models.PendingRequestView, error) {
	caller, err := s.Repo.GetByID(callerID)
	if err != nil {
		utils.GetLogger().Error("ListRequests: failed to fetch caller", zap.Error(err))
		return nil, fmt.Errorf("failed to load requests, please try again")
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}

	views := make([]models.PendingRequestView, 0, len(caller.PendingRequests))
	for _, fromID := range caller.PendingRequests {
		from, err := s.Repo.GetByID(fromID)
		if err != nil {
			utils.GetLogger().Warn("ListRequests: failed to resolve sender",
				zap.String("fromID", fromID), zap.Error(err))
			continue
		}
		if from == nil {
			continue
		}
		views = append(views, models.PendingRequestView{
			From:      from.ID,
			FromName:  from.Name,
			FromEmail: from.Email,
		})
	}
	return views, nil
}

// CurrentPartner returns the paired account's profile, or nil when unpaired.
func (s *DefaultPartnerService) CurrentPartner(callerID string) (*models.User, error) {
	caller, err := s.Repo.GetByID(callerID)
	if err != nil {
		utils.GetLogger().Error("CurrentPartner: failed to fetch caller", zap.Error(err))
		return nil, fmt.Errorf("failed to load partner, please try again")
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}
	if caller.Partner == "" {
		return nil, nil
	}
	p, err := s.Repo.GetByID(caller.Partner)
	if err != nil {
		utils.GetLogger().Error("CurrentPartner: failed to fetch partner", zap.Error(err))
		return nil, fmt.Errorf("failed to load partner, please try again")
	}
	return p, nil
}

func (s *DefaultPartnerService) push(userID, title, body string, data map[string]string) {
	if s.Notify == nil {
		return
	}
	s.Notify.PushToUser(userID, title, body, data)
}
