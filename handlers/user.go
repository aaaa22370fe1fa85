package handlers

import (
	"errors"
	"net/http"

	"github.com/SachinKokare07/partner-app/models"
	user "github.com/SachinKokare07/partner-app/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account endpoints backed by a UserService.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("User registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, user.ErrNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified. Please verify your email before logging in."})
		default:
			logger.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}
	c.JSON(http.StatusOK, auth)
}

// VerifyOTPHandler handles POST /api/users/verify-otp.
func (h *UserHandler) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		UserID string `json:"userId" binding:"required"`
		OTP    string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := h.UserService.CheckVerification(req.UserID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter the complete 6-digit code"})
		case errors.Is(err, user.ErrOTPNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No verification code found. Please request a new one."})
		case errors.Is(err, user.ErrOTPExpired):
			c.JSON(http.StatusGone, gin.H{"error": "Verification code has expired. Please request a new one."})
		case errors.Is(err, user.ErrOTPMismatch):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect verification code"})
		case errors.Is(err, user.ErrOTPConsumed):
			c.JSON(http.StatusConflict, gin.H{"error": "This code has already been used. Please request a new one."})
		default:
			logger.Error("OTP verification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully", "auth": auth})
}

// ResendOTPHandler handles POST /api/users/resend-otp.
func (h *UserHandler) ResendOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.ResendOTP(req.Email); err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No account found for this email"})
		case errors.Is(err, user.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already verified"})
		default:
			logger.Error("Failed to resend OTP", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}
