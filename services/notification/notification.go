package notification

import (
	"context"
	"time"

	userRepo "github.com/SachinKokare07/partner-app/database/repository/user"
	"github.com/SachinKokare07/partner-app/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultNotificationService sends FCM pushes to accounts that registered a
// device token. Every send is best-effort: failures are logged, never
// propagated.
type DefaultNotificationService struct {
	Repo userRepo.UserRepository
}

// NewDefaultNotificationService creates the production push sender.
func NewDefaultNotificationService(repo userRepo.UserRepository) *DefaultNotificationService {
	return &DefaultNotificationService{Repo: repo}
}

// PushToUser looks up the account's FCM token and sends a push. Accounts
// without a token, and configurations without Firebase credentials, are
// silently skipped.
func (s *DefaultNotificationService) PushToUser(userID, title, body string, data map[string]string) {
	if utils.FCMClient == nil {
		return
	}

	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "fcm_token": 1})
	if err != nil {
		utils.GetLogger().Warn("PushToUser: failed to fetch user",
			zap.String("userID", userID), zap.Error(err))
		return
	}
	if usr == nil || usr.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("PushToUser: failed to send FCM message",
			zap.String("userID", userID), zap.Error(err))
	}
}
