package routes

import (
	"net/http"
	"time"

	"github.com/SachinKokare07/partner-app/handlers"
	"github.com/SachinKokare07/partner-app/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.POST("/verify-otp", hb.VerifyOTPHandler)
		api.POST("/resend-otp", hb.ResendOTPHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetUserByIDHandler)
		api.GET("/email/:email", hb.GetUserByEmailHandler)
		api.POST("/logout", hb.RevokeUserAuthTokenHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterPartnerRoutes registers partner pairing endpoints.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/partners")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/request", hb.SendPartnerRequestHandler)
		api.POST("/accept", hb.AcceptPartnerRequestHandler)
		api.POST("/reject", hb.RejectPartnerRequestHandler)
		api.DELETE("", hb.RemovePartnerHandler)
		api.GET("/requests", hb.ListPartnerRequestsHandler)
		api.GET("/current", hb.CurrentPartnerHandler)
	}
}

// RegisterChatRoutes registers messaging endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/send", hb.SendMessageHandler)
		api.GET("/conversation/:partnerId", hb.ConversationHandler)
		api.GET("/partners", hb.ChatPartnersHandler)
		api.DELETE("/message/:id", hb.DeleteMessageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterPartnerRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
