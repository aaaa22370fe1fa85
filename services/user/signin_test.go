package user

import (
	"testing"

	"github.com/SachinKokare07/partner-app/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerVerified walks an account through registration and verification.
func registerVerified(t *testing.T, svc *DefaultUserService, otps *fakeOTPRepo, email string) string {
	t.Helper()
	resp, err := svc.Register(registration(email))
	require.NoError(t, err)
	rec, err := otps.Get(resp.UserID)
	require.NoError(t, err)
	_, err = svc.CheckVerification(resp.UserID, rec.Code)
	require.NoError(t, err)
	return resp.UserID
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _, otps, _ := newTestService()
	registerVerified(t, svc, otps, "asha@example.com")

	_, err := svc.Authenticate("asha@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnverifiedAccount(t *testing.T) {
	svc, users, _, _ := newTestService()

	resp, err := svc.Register(registration("asha@example.com"))
	require.NoError(t, err)

	_, err = svc.Authenticate("asha@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrNotVerified)

	// The rejection must not leave a session behind.
	usr, err := users.GetByID(resp.UserID)
	require.NoError(t, err)
	assert.Empty(t, usr.TokenHash)
}

func TestAuthenticateIssuesValidToken(t *testing.T) {
	svc, users, otps, _ := newTestService()
	userID := registerVerified(t, svc, otps, "asha@example.com")

	auth, err := svc.Authenticate("asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)

	subject, err := utils.ExtractIDFromToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)

	usr, err := users.GetByID(userID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(auth.Token), usr.TokenHash)
}

func TestSameDayLoginKeepsStreak(t *testing.T) {
	svc, _, otps, _ := newTestService()
	registerVerified(t, svc, otps, "asha@example.com")

	first, err := svc.Authenticate("asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	second, err := svc.Authenticate("asha@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, first.Streak, second.Streak)
}

func TestRevokeAuthTokenClearsSession(t *testing.T) {
	svc, users, otps, _ := newTestService()
	userID := registerVerified(t, svc, otps, "asha@example.com")

	_, err := svc.Authenticate("asha@example.com", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAuthToken(userID))

	usr, err := users.GetByID(userID)
	require.NoError(t, err)
	assert.Empty(t, usr.TokenHash)
}

func TestUpdateFCMToken(t *testing.T) {
	svc, users, otps, _ := newTestService()
	userID := registerVerified(t, svc, otps, "asha@example.com")

	require.NoError(t, svc.UpdateFCMToken(userID, "device-token-1"))

	usr, err := users.GetByID(userID)
	require.NoError(t, err)
	assert.Equal(t, "device-token-1", usr.FCMToken)
}
