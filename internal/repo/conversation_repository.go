package repo

import (
	"context"
	"fmt"

	"github.com/ayushh0406/swap-seva-odoo1/internal/db"
	"github.com/ayushh0406/swap-seva-odoo1/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ConversationRepository interface {
	ForParticipant(ctx context.Context, userID primitive.ObjectID) ([]model.Conversation, error)
}

type conversationRepository struct {
	mongoRepo *db.Repository[model.Conversation]
	logger    *zap.Logger
}

func NewConversationRepository(repo *db.Repository[model.Conversation], logger *zap.Logger) ConversationRepository {
	return &conversationRepository{
		mongoRepo: repo,
		logger:    logger,
	}
}

// ForParticipant fetches every conversation the user participates in
func (r *conversationRepository) ForParticipant(ctx context.Context, userID primitive.ObjectID) ([]model.Conversation, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().Eq("participants", userID).Build()
	conversations, err := r.mongoRepo.FindAll(ctx, filter)
	if err != nil {
		r.logger.Error("failed to query conversations",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}

	r.logger.Debug("conversations retrieved",
		zap.String("user_id", userID.Hex()),
		zap.Int("count", len(conversations)),
	)
	return conversations, nil
}
