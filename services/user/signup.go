package user

import (
	"fmt"
	"time"

	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// otpTTL is the validity window of a verification code.
const otpTTL = 10 * time.Minute

// Register validates the submitted profile, creates an unverified account,
// stores a fresh OTP and mails it. No session is issued: an account pending
// verification must never be treated as logged in.
func (s *DefaultUserService) Register(req models.UserRegistrationData) (*RegisterResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, ErrValidation
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = time.Now().UTC().Format("2006-01-02")
	}

	userObj := models.User{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Email:           req.Email,
		Mobile:          req.Mobile,
		PasswordHash:    string(hashedPassword),
		EmailVerified:   false,
		PendingRequests: []string{},
		Course:          req.Course,
		College:         req.College,
		Year:            req.Year,
		StartDate:       startDate,
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate OTP", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if err := s.OTPRepo.Put(userObj.ID, code, userObj.Email, otpTTL); err != nil {
		utils.GetLogger().Error("Register: failed to store OTP", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	// Delivery failure does not roll back the account or the stored code;
	// the user can still verify through a resend.
	delivered := true
	if err := s.Mailer.SendOTPEmail(userObj.Email, code, userObj.Name); err != nil {
		utils.GetLogger().Error("Register: failed to send OTP email",
			zap.String("email", userObj.Email), zap.Error(err))
		delivered = false
	}

	resp := &RegisterResponse{
		UserID:         userObj.ID,
		Email:          userObj.Email,
		EmailDelivered: delivered,
	}
	if delivered {
		resp.Message = fmt.Sprintf("OTP sent to %s! Check your email.", userObj.Email)
	} else {
		resp.Message = "Registered, but email delivery may have failed. You can request a new code."
	}
	return resp, nil
}

// ResendOTP regenerates the code for an unverified account. The overwrite
// invalidates the previous code.
func (s *DefaultUserService) ResendOTP(email string) error {
	if email == "" {
		return ErrValidation
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ResendOTP: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to send OTP, please try again")
	}
	if usr == nil {
		return ErrUserNotFound
	}
	if usr.EmailVerified {
		return ErrAlreadyVerified
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		utils.GetLogger().Error("ResendOTP: failed to generate OTP", zap.Error(err))
		return fmt.Errorf("failed to send OTP, please try again")
	}
	if err := s.OTPRepo.Put(usr.ID, code, usr.Email, otpTTL); err != nil {
		utils.GetLogger().Error("ResendOTP: failed to store OTP", zap.Error(err))
		return fmt.Errorf("failed to send OTP, please try again")
	}

	if err := s.Mailer.SendOTPEmail(usr.Email, code, usr.Name); err != nil {
		utils.GetLogger().Error("ResendOTP: failed to send OTP email",
			zap.String("email", usr.Email), zap.Error(err))
		return fmt.Errorf("failed to send OTP email, please try again")
	}
	return nil
}
