package repo

import (
	"context"
	"fmt"

	"github.com/ayushh0406/swap-seva-odoo1/internal/db"
	"github.com/ayushh0406/swap-seva-odoo1/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MessageRepository is read-only: messages are written by the chat service.
type MessageRepository interface {
	CountUnread(ctx context.Context, conversationID, notSender primitive.ObjectID) (int64, error)
	LastUnreadSender(ctx context.Context, conversationID, notSender primitive.ObjectID) (*primitive.ObjectID, error)
	RecentInConversations(ctx context.Context, conversationIDs []primitive.ObjectID, notSender primitive.ObjectID, limit int64) ([]model.Message, error)
}

type messageRepository struct {
	mongoRepo *db.Repository[model.Message]
	logger    *zap.Logger
}

func NewMessageRepository(repo *db.Repository[model.Message], logger *zap.Logger) MessageRepository {
	return &messageRepository{
		mongoRepo: repo,
		logger:    logger,
	}
}

// CountUnread counts unread messages in a conversation sent by anyone but notSender
func (r *messageRepository) CountUnread(ctx context.Context, conversationID, notSender primitive.ObjectID) (int64, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().
		Eq("conversation_id", conversationID).
		Ne("sender", notSender).
		Eq("read", false).
		Build()
	count, err := r.mongoRepo.Count(ctx, filter)
	if err != nil {
		r.logger.Error("failed to count unread messages",
			zap.String("conversation_id", conversationID.Hex()),
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

// LastUnreadSender returns the sender of the newest unread message in a
// conversation, or nil when there is none.
func (r *messageRepository) LastUnreadSender(ctx context.Context, conversationID, notSender primitive.ObjectID) (*primitive.ObjectID, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().
		Eq("conversation_id", conversationID).
		Ne("sender", notSender).
		Eq("read", false).
		Build()
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})

	msg, err := r.mongoRepo.FindOne(ctx, filter, opts)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		r.logger.Error("failed to fetch last unread message",
			zap.String("conversation_id", conversationID.Hex()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to fetch last unread message: %w", err)
	}
	return &msg.Sender, nil
}

// RecentInConversations returns the newest messages across the given
// conversations that were not sent by notSender
func (r *messageRepository) RecentInConversations(ctx context.Context, conversationIDs []primitive.ObjectID, notSender primitive.ObjectID, limit int64) ([]model.Message, error) {
	if len(conversationIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().
		In("conversation_id", conversationIDs).
		Ne("sender", notSender).
		Build()
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)

	messages, err := r.mongoRepo.FindAll(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to query recent messages", zap.Error(err))
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}
	return messages, nil
}
