package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/db"
	"github.com/ayushh0406/swap-seva-odoo1/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MatchRepository is read-only: the exchange workflow that mutates matches
// lives in another service.
type MatchRepository interface {
	CountInvolving(ctx context.Context, userID primitive.ObjectID, status string) (int64, error)
	CountForRecipient(ctx context.Context, userID primitive.ObjectID, status string) (int64, error)
	CountCompletedSince(ctx context.Context, userID primitive.ObjectID, since time.Time) (int64, error)
	RecentCompleted(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Match, error)
	RecentPendingFor(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Match, error)
}

type matchRepository struct {
	mongoRepo *db.Repository[model.Match]
	logger    *zap.Logger
}

func NewMatchRepository(repo *db.Repository[model.Match], logger *zap.Logger) MatchRepository {
	return &matchRepository{
		mongoRepo: repo,
		logger:    logger,
	}
}

// involving matches where the user is either requester or recipient
func involving(userID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"requester": userID},
		{"recipient": userID},
	}
}

func (r *matchRepository) CountInvolving(ctx context.Context, userID primitive.ObjectID, status string) (int64, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().Or(involving(userID)...).Eq("status", status).Build()
	count, err := r.mongoRepo.Count(ctx, filter)
	if err != nil {
		r.logger.Error("failed to count matches",
			zap.String("user_id", userID.Hex()),
			zap.String("status", status),
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (r *matchRepository) CountForRecipient(ctx context.Context, userID primitive.ObjectID, status string) (int64, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().Eq("recipient", userID).Eq("status", status).Build()
	count, err := r.mongoRepo.Count(ctx, filter)
	if err != nil {
		r.logger.Error("failed to count inbound matches",
			zap.String("user_id", userID.Hex()),
			zap.String("status", status),
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to count inbound matches: %w", err)
	}
	return count, nil
}

func (r *matchRepository) CountCompletedSince(ctx context.Context, userID primitive.ObjectID, since time.Time) (int64, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().
		Or(involving(userID)...).
		Eq("status", model.MatchStatusCompleted).
		Gte("updated_at", since).
		Build()
	count, err := r.mongoRepo.Count(ctx, filter)
	if err != nil {
		r.logger.Error("failed to count completed matches",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to count completed matches: %w", err)
	}
	return count, nil
}

// RecentCompleted returns the user's most recently updated completed matches
func (r *matchRepository) RecentCompleted(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Match, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().Or(involving(userID)...).Eq("status", model.MatchStatusCompleted).Build()
	opts := options.Find().SetSort(bson.M{"updated_at": -1}).SetLimit(limit)

	matches, err := r.mongoRepo.FindAll(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to query completed matches", zap.String("user_id", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to query completed matches: %w", err)
	}
	return matches, nil
}

// RecentPendingFor returns the most recent pending matches addressed to the user
func (r *matchRepository) RecentPendingFor(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Match, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().Eq("recipient", userID).Eq("status", model.MatchStatusPending).Build()
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)

	matches, err := r.mongoRepo.FindAll(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to query pending matches", zap.String("user_id", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to query pending matches: %w", err)
	}
	return matches, nil
}
