package configuration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/auth"
	"github.com/ayushh0406/swap-seva-odoo1/internal/db"
	"github.com/ayushh0406/swap-seva-odoo1/internal/handler"
	"github.com/ayushh0406/swap-seva-odoo1/internal/model"
	"github.com/ayushh0406/swap-seva-odoo1/internal/repo"
	"github.com/ayushh0406/swap-seva-odoo1/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Container struct {
	ConnectionHandler handler.ConnectionHandler
	DashboardHandler  handler.DashboardHandler
	SettingsHandler   handler.SettingsHandler
	MonitorHandler    handler.MonitorHandler
	JWT               *auth.JWTService
	Config            Config
	Logger            *zap.Logger

	// private - for cleanup
	mongoClient *mongo.Database
}

func BuildContainer() (*Container, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	con, err := db.OpenConnection(config.Mongo.Uri, config.Mongo.Database)
	if err != nil {
		return nil, err
	}

	logger, _ := zap.NewProduction()

	userMongoRepo := db.NewRepository[model.User](con, db.UsersCollection)
	notificationMongoRepo := db.NewRepository[model.Notification](con, db.NotificationsCollection)
	matchMongoRepo := db.NewRepository[model.Match](con, db.MatchesCollection)
	conversationMongoRepo := db.NewRepository[model.Conversation](con, db.ConversationsCollection)
	messageMongoRepo := db.NewRepository[model.Message](con, db.MessagesCollection)

	userRepo := repo.NewUserRepository(con, userMongoRepo, logger)
	notificationRepo := repo.NewNotificationRepository(notificationMongoRepo, logger)
	matchRepo := repo.NewMatchRepository(matchMongoRepo, logger)
	conversationRepo := repo.NewConversationRepository(conversationMongoRepo, logger)
	messageRepo := repo.NewMessageRepository(messageMongoRepo, logger)

	connectionService := service.NewConnectionService(userRepo, notificationRepo)
	settingsService := service.NewSettingsService(userRepo)
	dashboardService := service.NewDashboardService(userRepo, matchRepo, conversationRepo, messageRepo, service.DefaultTrustDelta)
	monitorService := service.NewMonitorService(con, logger)

	return &Container{
		ConnectionHandler: handler.NewConnectionHandler(connectionService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		SettingsHandler:   handler.NewSettingsHandler(settingsService, logger),
		MonitorHandler:    handler.NewMonitorHandler(monitorService),
		JWT:               auth.NewJWTService(config.Auth.JwtSecret),
		Config:            *config,
		Logger:            logger,
		mongoClient:       con,
	}, nil
}

// Close gracefully shuts down all connections
func (c *Container) Close() error {
	// Sync logger
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	// Close MongoDB connection pool
	if c.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoClient.Client().Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}
	}

	return nil
}
