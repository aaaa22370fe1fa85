package user

import (
	"fmt"

	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("GetUserByID: fetch failed", zap.String("id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user, please try again")
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by its email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("GetUserByEmail: fetch failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user, please try again")
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// UpdateFCMToken stores the device push token used for partner and chat
// notifications.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"fcm_token": token}); err != nil {
		utils.GetLogger().Error("UpdateFCMToken: update failed", zap.String("id", userID), zap.Error(err))
		return fmt.Errorf("failed to update push token, please try again")
	}
	return nil
}
