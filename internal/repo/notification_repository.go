package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/db"
	"github.com/ayushh0406/swap-seva-odoo1/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *model.Notification) (string, error)
	FindByID(ctx context.Context, id string) (*model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationRepository struct {
	mongoRepo *db.Repository[model.Notification]
	logger    *zap.Logger
}

func NewNotificationRepository(repo *db.Repository[model.Notification], logger *zap.Logger) NotificationRepository {
	return &notificationRepository{
		mongoRepo: repo,
		logger:    logger,
	}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *model.Notification) (string, error) {
	if notification == nil {
		return "", fmt.Errorf("invalid notification: cannot be nil")
	}

	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	result, err := r.mongoRepo.Create(ctx, *notification)
	if err != nil {
		r.logger.Error("failed to insert notification",
			zap.String("type", notification.Type),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to insert notification: %w", err)
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}

	r.logger.Info("notification inserted",
		zap.String("inserted_id", insertedID),
		zap.String("type", notification.Type),
		zap.String("recipient", notification.Recipient.Hex()),
	)
	return insertedID, nil
}

// FindByID fetches a notification by ID. Returns (nil, nil) when absent.
func (r *notificationRepository) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	if id == "" {
		return nil, ErrInvalidNotificationID
	}

	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	result, err := r.mongoRepo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments || err == primitive.ErrInvalidHex {
			r.logger.Debug("notification not found", zap.String("notification_id", id))
			return nil, nil
		}
		r.logger.Error("failed to fetch notification", zap.String("notification_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}

	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	_, err := r.mongoRepo.UpdateByID(ctx, id, bson.M{"read": true, "updated_at": time.Now()})
	if err != nil {
		r.logger.Error("failed to mark notification read", zap.String("notification_id", id), zap.Error(err))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
