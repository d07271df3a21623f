package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bistro/api/config"
	"bistro/api/controllers"
	"bistro/api/database"
	"bistro/api/jwtservice"
	"bistro/api/middleware"
	"bistro/api/payments"
	"bistro/api/routes"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Disconnect(ctx)
	logger.Info("connected to database", "db", cfg.DBName)

	h := &controllers.Handler{
		Users:    db.Users,
		Menu:     db.Menu,
		Reviews:  db.Reviews,
		Carts:    db.Carts,
		Payments: db.Payments,
		Intents:  payments.NewStripeClient(cfg.StripeSecretKey),
		JWT:      jwtservice.New(cfg.AccessTokenSecret),
		Log:      logger,
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery(), cors.Default())
	routes.Setup(router, h)

	logger.Info("listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
