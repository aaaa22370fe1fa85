package handlers

import (
	userRepoPkg "github.com/SachinKokare07/partner-app/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	VerifyOTPHandler           gin.HandlerFunc
	ResendOTPHandler           gin.HandlerFunc
	GetUserByIDHandler         gin.HandlerFunc
	GetUserByEmailHandler      gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc
	UpdateFCMTokenHandler      gin.HandlerFunc

	// Partner endpoints
	SendPartnerRequestHandler   gin.HandlerFunc
	AcceptPartnerRequestHandler gin.HandlerFunc
	RejectPartnerRequestHandler gin.HandlerFunc
	RemovePartnerHandler        gin.HandlerFunc
	ListPartnerRequestsHandler  gin.HandlerFunc
	CurrentPartnerHandler       gin.HandlerFunc

	// Chat endpoints
	SendMessageHandler   gin.HandlerFunc
	ConversationHandler  gin.HandlerFunc
	ChatPartnersHandler  gin.HandlerFunc
	DeleteMessageHandler gin.HandlerFunc
}
