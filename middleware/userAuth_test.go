package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) GetByID(id string) (*models.User, error) {
	return s.GetByIDWithProjection(id, nil)
}

func (s *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) GetByEmail(email string) (*models.User, error)      { return nil, nil }
func (s *stubUserRepo) Create(user *models.User) error                     { return nil }
func (s *stubUserRepo) UpdateFields(id string, fields bson.M) error        { return nil }
func (s *stubUserRepo) AddPendingRequest(targetID, fromID string) error    { return nil }
func (s *stubUserRepo) RemovePendingRequest(targetID, fromID string) error { return nil }
func (s *stubUserRepo) SetPartner(id, partnerID string) error              { return nil }

func setupAuthTest(t *testing.T) (*stubUserRepo, *redis.Client, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	utils.SetAuthCacheClient(client)
	t.Cleanup(func() { utils.SetAuthCacheClient(nil) })

	token, err := utils.GenerateToken("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", TokenHash: utils.HashToken(token)},
	}}
	return repo, client, token, utils.HashToken(token)
}

func runAuthRequest(repo *stubUserRepo, authHeader string) (*httptest.ResponseRecorder, *string) {
	r := gin.New()
	var seenUserID *string
	r.GET("/protected", JWTAuthUserMiddleware(repo), func(c *gin.Context) {
		id := c.GetString("userID")
		seenUserID = &id
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seenUserID
}

func TestAuthMissingHeader(t *testing.T) {
	repo, _, _, _ := setupAuthTest(t)
	w, _ := runAuthRequest(repo, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	repo, _, token, _ := setupAuthTest(t)
	w, _ := runAuthRequest(repo, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGarbageToken(t *testing.T) {
	repo, _, _, _ := setupAuthTest(t)
	w, _ := runAuthRequest(repo, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthDBFallbackPrimesCache(t *testing.T) {
	repo, client, token, hash := setupAuthTest(t)

	w, seenUserID := runAuthRequest(repo, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seenUserID)
	assert.Equal(t, "user-1", *seenUserID)

	cached, err := client.Get(context.Background(), utils.AuthCachePrefix+"user-1").Result()
	require.NoError(t, err)
	assert.Equal(t, hash, cached)
}

func TestAuthCacheHit(t *testing.T) {
	repo, client, token, hash := setupAuthTest(t)
	require.NoError(t, client.Set(context.Background(), utils.AuthCachePrefix+"user-1", hash, time.Hour).Err())

	// Even with the DB record gone, the cached hash authenticates.
	repo.users = map[string]*models.User{}
	w, _ := runAuthRequest(repo, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRevokedToken(t *testing.T) {
	repo, _, token, _ := setupAuthTest(t)
	repo.users["user-1"].TokenHash = ""

	w, _ := runAuthRequest(repo, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthStaleCachedHash(t *testing.T) {
	repo, client, token, _ := setupAuthTest(t)
	require.NoError(t, client.Set(context.Background(), utils.AuthCachePrefix+"user-1", "different-hash", time.Hour).Err())

	w, _ := runAuthRequest(repo, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthUnknownUser(t *testing.T) {
	repo, _, _, _ := setupAuthTest(t)
	token, err := utils.GenerateToken("ghost", "ghost@example.com", time.Hour)
	require.NoError(t, err)

	w, _ := runAuthRequest(repo, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
