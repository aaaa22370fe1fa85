package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/SachinKokare07/partner-app/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CheckVerification validates a submitted code against the stored record.
// Codes are compared as trimmed strings so numeric client input cannot slip
// past the match. Exactly one successful check is possible per code.
func (s *DefaultUserService) CheckVerification(userID, code string) (*AuthResponse, error) {
	submitted := strings.TrimSpace(code)
	if len(submitted) != utils.OTPLength {
		return nil, ErrInvalidInput
	}

	record, err := s.OTPRepo.Get(userID)
	if err != nil {
		utils.GetLogger().Error("CheckVerification: failed to fetch OTP", zap.Error(err))
		return nil, fmt.Errorf("failed to verify OTP, please try again")
	}
	if record == nil {
		return nil, ErrOTPNotFound
	}
	if record.Expired(time.Now()) {
		return nil, ErrOTPExpired
	}
	if strings.TrimSpace(record.Code) != submitted {
		return nil, ErrOTPMismatch
	}
	if record.Verified {
		return nil, ErrOTPConsumed
	}

	if err := s.OTPRepo.MarkVerified(userID); err != nil {
		utils.GetLogger().Error("CheckVerification: failed to mark OTP verified", zap.Error(err))
		return nil, fmt.Errorf("failed to verify OTP, please try again")
	}
	if err := s.Repo.UpdateFields(userID, bson.M{"email_verified": true}); err != nil {
		utils.GetLogger().Error("CheckVerification: failed to flag email verified", zap.Error(err))
		return nil, fmt.Errorf("failed to verify OTP, please try again")
	}

	usr, err := s.Repo.GetByID(userID)
	if err != nil || usr == nil {
		utils.GetLogger().Error("CheckVerification: failed to load user", zap.Error(err))
		return nil, fmt.Errorf("failed to verify OTP, please try again")
	}
	usr.EmailVerified = true

	resp, err := s.establishSession(usr)
	if err != nil {
		return nil, err
	}

	s.sendWelcome(usr.Email, usr.Name)

	return resp, nil
}

// sendWelcome hands the welcome email to the background queue, falling back
// to an inline send. Best-effort either way.
func (s *DefaultUserService) sendWelcome(email, name string) {
	if s.Welcome != nil {
		if err := s.Welcome.EnqueueWelcomeEmail(email, name); err != nil {
			utils.GetLogger().Warn("CheckVerification: failed to enqueue welcome email",
				zap.String("email", email), zap.Error(err))
		}
		return
	}
	if err := s.Mailer.SendWelcomeEmail(email, name); err != nil {
		utils.GetLogger().Warn("CheckVerification: failed to send welcome email",
			zap.String("email", email), zap.Error(err))
	}
}
