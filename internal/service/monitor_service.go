package service

import (
	"context"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/db"
	"github.com/ayushh0406/swap-seva-odoo1/internal/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MonitorService reports service health: database reachability and
// per-collection document counts.
type MonitorService interface {
	Health(ctx context.Context) *model.HealthResponse
}

type monitorService struct {
	con    *mongo.Database
	logger *zap.Logger
}

func NewMonitorService(con *mongo.Database, logger *zap.Logger) MonitorService {
	return &monitorService{
		con:    con,
		logger: logger,
	}
}

func (s *monitorService) Health(ctx context.Context) *model.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	response := &model.HealthResponse{
		Status:      "healthy",
		Database:    "connected",
		Collections: make(map[string]int64),
	}

	if err := s.con.Client().Ping(ctx, nil); err != nil {
		s.logger.Error("database ping failed", zap.Error(err))
		response.Status = "unhealthy"
		response.Database = "unreachable"
		return response
	}

	for _, name := range []string{
		db.UsersCollection,
		db.NotificationsCollection,
		db.MatchesCollection,
		db.ConversationsCollection,
		db.MessagesCollection,
	} {
		count, err := s.con.Collection(name).CountDocuments(ctx, db.Empty())
		if err != nil {
			s.logger.Warn("failed to count collection", zap.String("collection", name), zap.Error(err))
			continue
		}
		response.Collections[name] = count
	}

	return response
}
