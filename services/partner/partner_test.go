package partner

import (
	"fmt"
	"sync"
	"testing"

	"github.com/SachinKokare07/partner-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		cp := *u
		f.users[u.ID] = &cp
	}
	return f
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error {
	return fmt.Errorf("not used in partner tests")
}

func (f *fakeUserRepo) AddPendingRequest(targetID, fromID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[targetID]
	if !ok {
		return fmt.Errorf("user with id %s not found", targetID)
	}
	for _, id := range u.PendingRequests {
		if id == fromID {
			return nil
		}
	}
	u.PendingRequests = append(u.PendingRequests, fromID)
	return nil
}

func (f *fakeUserRepo) RemovePendingRequest(targetID, fromID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[targetID]
	if !ok {
		return fmt.Errorf("user with id %s not found", targetID)
	}
	kept := u.PendingRequests[:0]
	for _, id := range u.PendingRequests {
		if id != fromID {
			kept = append(kept, id)
		}
	}
	u.PendingRequests = kept
	return nil
}

func (f *fakeUserRepo) SetPartner(id, partnerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	u.Partner = partnerID
	return nil
}

func testUsers() (*models.User, *models.User) {
	alice := &models.User{ID: "alice-id", Name: "Alice", Email: "alice@example.com", PendingRequests: []string{}}
	bob := &models.User{ID: "bob-id", Name: "Bob", Email: "bob@example.com", PendingRequests: []string{}}
	return alice, bob
}

func TestSendRequestAddsPendingEntry(t *testing.T) {
	alice, bob := testUsers()
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	require.NoError(t, svc.SendRequest(alice.ID, bob.Email))

	stored, err := repo.GetByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, stored.PendingRequests)
}

func TestSendRequestUnknownEmail(t *testing.T) {
	alice, _ := testUsers()
	repo := newFakeUserRepo(alice)
	svc := &DefaultPartnerService{Repo: repo}

	err := svc.SendRequest(alice.ID, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendRequestToSelf(t *testing.T) {
	alice, _ := testUsers()
	repo := newFakeUserRepo(alice)
	svc := &DefaultPartnerService{Repo: repo}

	err := svc.SendRequest(alice.ID, alice.Email)
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestSendRequestTwice(t *testing.T) {
	alice, bob := testUsers()
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	require.NoError(t, svc.SendRequest(alice.ID, bob.Email))
	err := svc.SendRequest(alice.ID, bob.Email)
	assert.ErrorIs(t, err, ErrAlreadyRequested)
}

func TestAcceptRequestPairsBothSides(t *testing.T) {
	alice, bob := testUsers()
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	require.NoError(t, svc.SendRequest(alice.ID, bob.Email))
	require.NoError(t, svc.AcceptRequest(bob.ID, alice.ID))

	storedBob, err := repo.GetByID(bob.ID)
	require.NoError(t, err)
	storedAlice, err := repo.GetByID(alice.ID)
	require.NoError(t, err)

	assert.Equal(t, alice.ID, storedBob.Partner)
	assert.Equal(t, bob.ID, storedAlice.Partner)
	assert.Empty(t, storedBob.PendingRequests, "accepted request is removed")
}

func TestAcceptRequestWithoutPending(t *testing.T) {
	alice, bob := testUsers()
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	err := svc.AcceptRequest(bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNoRequest)
}

func TestAcceptRequestRetryConverges(t *testing.T) {
	// A half-applied accept (partner set, pending entry already cleared)
	// must succeed when retried.
	alice, bob := testUsers()
	bob.Partner = alice.ID
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	require.NoError(t, svc.AcceptRequest(bob.ID, alice.ID))

	storedAlice, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, storedAlice.Partner)
}

func TestRejectRequestOnlyClearsPending(t *testing.T) {
	alice, bob := testUsers()
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	require.NoError(t, svc.SendRequest(alice.ID, bob.Email))
	require.NoError(t, svc.RejectRequest(bob.ID, alice.ID))

	storedBob, err := repo.GetByID(bob.ID)
	require.NoError(t, err)
	storedAlice, err := repo.GetByID(alice.ID)
	require.NoError(t, err)

	assert.Empty(t, storedBob.PendingRequests)
	assert.Empty(t, storedBob.Partner)
	assert.Empty(t, storedAlice.Partner)
}

func TestRejectRequestWithoutPending(t *testing.T) {
	alice, bob := testUsers()
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	err := svc.RejectRequest(bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNoRequest)
}

func TestRemovePartnerClearsBothSides(t *testing.T) {
	alice, bob := testUsers()
	alice.Partner = bob.ID
	bob.Partner = alice.ID
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	require.NoError(t, svc.RemovePartner(alice.ID))

	storedAlice, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	storedBob, err := repo.GetByID(bob.ID)
	require.NoError(t, err)

	assert.Empty(t, storedAlice.Partner)
	assert.Empty(t, storedBob.Partner)
}

func TestRemovePartnerWithoutPartner(t *testing.T) {
	alice, _ := testUsers()
	repo := newFakeUserRepo(alice)
	svc := &DefaultPartnerService{Repo: repo}

	err := svc.RemovePartner(alice.ID)
	assert.ErrorIs(t, err, ErrNoPartner)
}

func TestListRequestsResolvesProfiles(t *testing.T) {
	alice, bob := testUsers()
	bob.PendingRequests = []string{alice.ID, "ghost-id"}
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	views, err := svc.ListRequests(bob.ID)
	require.NoError(t, err)

	// Requests from deleted accounts are skipped.
	require.Len(t, views, 1)
	assert.Equal(t, alice.ID, views[0].From)
	assert.Equal(t, "Alice", views[0].FromName)
	assert.Equal(t, "alice@example.com", views[0].FromEmail)
}

func TestCurrentPartner(t *testing.T) {
	alice, bob := testUsers()
	alice.Partner = bob.ID
	repo := newFakeUserRepo(alice, bob)
	svc := &DefaultPartnerService{Repo: repo}

	current, err := svc.CurrentPartner(alice.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, bob.ID, current.ID)

	none, err := svc.CurrentPartner(bob.ID)
	require.NoError(t, err)
	assert.Nil(t, none)
}
