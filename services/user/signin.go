package user

import (
	"context"
	"fmt"
	"time"

	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is the lifetime of an issued session token.
const tokenDuration = 72 * time.Hour

// Authenticate verifies credentials and establishes a session. Unverified
// accounts are rejected before any token is issued or persisted, so they are
// never left authenticated.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !usr.EmailVerified {
		return nil, ErrNotVerified
	}

	return s.establishSession(usr)
}

// establishSession issues a token, persists its hash for revocation checks
// and runs the best-effort login-streak update.
func (s *DefaultUserService) establishSession(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("establishSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateFields(usr.ID, bson.M{"token_hash": tokenHash}); err != nil {
		utils.GetLogger().Error("establishSession: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if s.Cache != nil {
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + usr.ID
		if err := s.Cache.Set(ctx, cacheKey, tokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("establishSession: failed to prime auth cache", zap.Error(err))
		}
	}

	streak := s.updateLoginStreak(usr)

	return &AuthResponse{
		ID:     usr.ID,
		Token:  token,
		Name:   usr.Name,
		Email:  usr.Email,
		Streak: streak,
	}, nil
}

// RevokeAuthToken drops the session: clears the stored hash and the cache
// entry so the middleware rejects the token on its next use.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"token_hash": ""}); err != nil {
		utils.GetLogger().Error("RevokeAuthToken: failed to clear token hash", zap.Error(err))
		return fmt.Errorf("failed to sign out, please try again")
	}
	if s.Cache != nil {
		ctx := context.Background()
		if err := s.Cache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache", zap.Error(err))
		}
	}
	return nil
}
