package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SachinKokare07/partner-app/config"
	"github.com/SachinKokare07/partner-app/cron"
	"github.com/SachinKokare07/partner-app/database"
	messageRepoPkg "github.com/SachinKokare07/partner-app/database/repository/message"
	otpRepoPkg "github.com/SachinKokare07/partner-app/database/repository/otp"
	userRepoPkg "github.com/SachinKokare07/partner-app/database/repository/user"
	"github.com/SachinKokare07/partner-app/handlers"
	"github.com/SachinKokare07/partner-app/middleware"
	"github.com/SachinKokare07/partner-app/routes"
	"github.com/SachinKokare07/partner-app/services/chat"
	"github.com/SachinKokare07/partner-app/services/mail"
	"github.com/SachinKokare07/partner-app/services/notification"
	"github.com/SachinKokare07/partner-app/services/partner"
	"github.com/SachinKokare07/partner-app/services/user"
	"github.com/SachinKokare07/partner-app/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	otpRepo := otpRepoPkg.NewMongoOTPRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// services.
	mailer := mail.NewSMTPMailer(&config.AppConfig)
	emailQueue := cron.NewEmailQueue()
	cron.InitEmailWorker(mailer)

	notificationService := notification.NewDefaultNotificationService(userRepo)

	userService := &user.DefaultUserService{
		Repo:    userRepo,
		OTPRepo: otpRepo,
		Mailer:  mailer,
		Welcome: emailQueue,
		Cache:   utils.GetAuthCacheClient(),
	}
	partnerService := &partner.DefaultPartnerService{
		Repo:   userRepo,
		Notify: notificationService,
	}
	chatService := &chat.DefaultChatService{
		Messages: messageRepo,
		Users:    userRepo,
		Notify:   notificationService,
	}

	userHandler := handlers.NewUserHandler(userService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:        userHandler.RegisterUserHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateUserHandler,
		VerifyOTPHandler:           userHandler.VerifyOTPHandler,
		ResendOTPHandler:           userHandler.ResendOTPHandler,
		GetUserByIDHandler:         userHandler.GetUserByIDHandler,
		GetUserByEmailHandler:      userHandler.GetUserByEmailHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeUserAuthTokenHandler,
		UpdateFCMTokenHandler:      userHandler.UpdateFCMTokenHandler,

		// Partner endpoints.
		SendPartnerRequestHandler:   partnerHandler.SendRequestHandler,
		AcceptPartnerRequestHandler: partnerHandler.AcceptRequestHandler,
		RejectPartnerRequestHandler: partnerHandler.RejectRequestHandler,
		RemovePartnerHandler:        partnerHandler.RemovePartnerHandler,
		ListPartnerRequestsHandler:  partnerHandler.ListRequestsHandler,
		CurrentPartnerHandler:       partnerHandler.CurrentPartnerHandler,

		// Chat endpoints.
		SendMessageHandler:   chatHandler.SendMessageHandler,
		ConversationHandler:  chatHandler.ConversationHandler,
		ChatPartnersHandler:  chatHandler.ChatPartnersHandler,
		DeleteMessageHandler: chatHandler.DeleteMessageHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
