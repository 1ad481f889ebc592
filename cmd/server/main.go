package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/raihankalla/myriad-backend/internal/router"
	"github.com/raihankalla/myriad-backend/pkg/config"
	"github.com/raihankalla/myriad-backend/pkg/firebase"
	"github.com/raihankalla/myriad-backend/pkg/logger"
	"github.com/raihankalla/myriad-backend/validators"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize database connections (loads .env first)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	cfg := config.Load()
	logger.SetLoggerOptions(func(l *logrus.Logger) {
		if cfg.Env == "production" {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
	})

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, db.Mongo, firebaseApp.MessagingClient); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
