package user

import (
	"fmt"
	"sync"
	"time"

	"github.com/SachinKokare07/partner-app/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
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
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s already exists", user.Email)
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	for k, v := range fields {
		switch k {
		case "email_verified":
			u.EmailVerified = v.(bool)
		case "token_hash":
			u.TokenHash = v.(string)
		case "fcm_token":
			u.FCMToken = v.(string)
		case "streak":
			u.Streak = v.(int)
		case "last_login_date":
			u.LastLoginDate = v.(time.Time)
		default:
			return fmt.Errorf("unexpected field %q", k)
		}
	}
	return nil
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

// fakeOTPRepo is an in-memory OTPRepository.
type fakeOTPRepo struct {
	mu      sync.Mutex
	records map[string]*models.OTPRecord
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{records: make(map[string]*models.OTPRecord)}
}

func (f *fakeOTPRepo) Put(userID, code, email string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.records[userID] = &models.OTPRecord{
		UserID:    userID,
		Code:      code,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	return nil
}

func (f *fakeOTPRepo) Get(userID string) (*models.OTPRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeOTPRepo) MarkVerified(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[userID]; ok {
		rec.Verified = true
	}
	return nil
}

// expire backdates a record so it reads as expired.
func (f *fakeOTPRepo) expire(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[userID]; ok {
		rec.ExpiresAt = time.Now().Add(-time.Minute)
	}
}

// fakeMailer records sent mail and can be told to fail.
type fakeMailer struct {
	mu           sync.Mutex
	otpSends     []string
	welcomeSends []string
	failOTP      bool
}

func (f *fakeMailer) SendOTPEmail(email, code, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOTP {
		return fmt.Errorf("smtp unavailable")
	}
	f.otpSends = append(f.otpSends, email)
	return nil
}

func (f *fakeMailer) SendWelcomeEmail(email, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomeSends = append(f.welcomeSends, email)
	return nil
}

func newTestService() (*DefaultUserService, *fakeUserRepo, *fakeOTPRepo, *fakeMailer) {
	users := newFakeUserRepo()
	otps := newFakeOTPRepo()
	mailer := &fakeMailer{}
	svc := &DefaultUserService{Repo: users, OTPRepo: otps, Mailer: mailer}
	return svc, users, otps, mailer
}

func registration(email string) models.UserRegistrationData {
	return models.UserRegistrationData{
		Name:     "Asha",
		Email:    email,
		Password: "s3cret-pass",
	}
}
