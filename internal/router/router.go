package router

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/raihankalla/myriad-backend/internal/handlers"
	"github.com/raihankalla/myriad-backend/internal/middleware"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/raihankalla/myriad-backend/internal/services/fcm"
	"github.com/raihankalla/myriad-backend/internal/services/notification"
	"github.com/raihankalla/myriad-backend/pkg/config"
	"github.com/raihankalla/myriad-backend/pkg/crypto"
	"github.com/raihankalla/myriad-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestID())
	logger.For(context.Background()).Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, mgClient *mongo.Client, messagingClient *messaging.Client) error {
	ctx := context.Background()
	db := mgClient.Database(cfg.MongoDatabase)

	// The platform's own wallet, sender of every platform-originated
	// notification.
	officialPair, err := crypto.PolkadotKeyPair(cfg.MyriadMnemonic)
	if err != nil {
		return fmt.Errorf("failed to derive platform keypair: %w", err)
	}
	officialAddress := crypto.HexAddress(officialPair.Public())

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)
	voteRepo := repositories.NewMongoVoteRepository(db)
	transactionRepo := repositories.NewMongoTransactionRepository(db)
	friendRepo := repositories.NewMongoFriendRepository(db)
	peopleRepo := repositories.NewMongoPeopleRepository(db)
	usmRepo := repositories.NewMongoUserSocialMediaRepository(db)
	reportRepo := repositories.NewMongoReportRepository(db)
	userReportRepo := repositories.NewMongoUserReportRepository(db)
	notificationRepo := repositories.NewMongoNotificationRepository(db)
	settingRepo := repositories.NewMongoNotificationSettingRepository(db)

	// --- Notification engine ---
	notificationService := notification.NewService(notification.Config{
		Users:            userRepo,
		Posts:            postRepo,
		Comments:         commentRepo,
		Notifications:    notificationRepo,
		UserSocialMedias: usmRepo,
		Reports:          reportRepo,
		UserReports:      userReportRepo,
		Settings:         settingRepo,
		Pusher:           fcm.NewService(messagingClient),
		OfficialAddress:  officialAddress,
		FanoutLimit:      cfg.NotificationFanout,
	})

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, peopleRepo, usmRepo, cfg.EscrowSecretKey)
	postHandler.RegisterPostRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, notificationService)
	commentHandler.RegisterCommentRoutes(api)

	voteHandler := handlers.NewVoteHandler(voteRepo, notificationService)
	voteHandler.RegisterVoteRoutes(api)

	transactionHandler := handlers.NewTransactionHandler(transactionRepo, notificationService, officialAddress)
	transactionHandler.RegisterTransactionRoutes(api)

	friendHandler := handlers.NewFriendHandler(friendRepo, userRepo, notificationService)
	friendHandler.RegisterFriendRoutes(api)

	usmHandler := handlers.NewUserSocialMediaHandler(usmRepo, peopleRepo, notificationService)
	usmHandler.RegisterUserSocialMediaRoutes(api)

	reportHandler := handlers.NewReportHandler(reportRepo, userReportRepo, notificationService)
	reportHandler.RegisterReportRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	settingHandler := handlers.NewNotificationSettingHandler(settingRepo)
	settingHandler.RegisterNotificationSettingRoutes(api)

	logger.For(ctx).Info("All routes configured.")
	return nil
}
