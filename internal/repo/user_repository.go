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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (string, error)
	AddConnection(ctx context.Context, userID, other primitive.ObjectID) error
	UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) error
	SetProfilePhoto(ctx context.Context, id string, photo string) error
	SetNotificationPrefs(ctx context.Context, id string, prefs model.NotificationPrefs) error
	SetPrivacyPrefs(ctx context.Context, id string, prefs model.PrivacyPrefs) error
	SetPassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) (bool, error)
	ConnectionsPage(ctx context.Context, userID string, page, limit int64) ([]model.ConnectionProfile, int64, error)
	NamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

type userRepository struct {
	con       *mongo.Database
	mongoRepo *db.Repository[model.User]
	logger    *zap.Logger
}

func NewUserRepository(con *mongo.Database, repo *db.Repository[model.User], logger *zap.Logger) UserRepository {
	return &userRepository{
		con:       con,
		mongoRepo: repo,
		logger:    logger,
	}
}

// FindByID fetches a user document by ID. Returns (nil, nil) when absent.
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrInvalidUserID
	}

	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	result, err := r.mongoRepo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments || err == primitive.ErrInvalidHex {
			r.logger.Debug("user not found", zap.String("user_id", id))
			return nil, nil
		}
		r.logger.Error("failed to fetch user", zap.String("user_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return result, nil
}

// FindByEmail fetches a user by lowercased email. Returns (nil, nil) when absent.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().Eq("email", email).Build()
	result, err := r.mongoRepo.FindOne(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		r.logger.Error("failed to fetch user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	return result, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (string, error) {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	result, err := r.mongoRepo.Create(ctx, *user)
	if err != nil {
		r.logger.Error("failed to insert user", zap.Error(err))
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}

	r.logger.Info("user inserted", zap.String("inserted_id", insertedID))
	return insertedID, nil
}

// AddConnection adds other to the user's connection set ($addToSet, duplicate-safe)
func (r *userRepository) AddConnection(ctx context.Context, userID, other primitive.ObjectID) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	_, err := r.mongoRepo.UpdateRaw(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"connections": other}},
	)
	if err != nil {
		r.logger.Error("failed to add connection",
			zap.String("user_id", userID.Hex()),
			zap.String("other_id", other.Hex()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to add connection: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) error {
	skills := update.Skills
	if skills == nil {
		skills = []string{}
	}
	return r.set(ctx, id, bson.M{
		"name":     update.Name,
		"email":    update.Email,
		"phone":    update.Phone,
		"bio":      update.Bio,
		"location": update.Location,
		"skills":   skills,
	})
}

func (r *userRepository) SetProfilePhoto(ctx context.Context, id string, photo string) error {
	return r.set(ctx, id, bson.M{"profile_photo": photo})
}

func (r *userRepository) SetNotificationPrefs(ctx context.Context, id string, prefs model.NotificationPrefs) error {
	return r.set(ctx, id, bson.M{"notifications": prefs})
}

func (r *userRepository) SetPrivacyPrefs(ctx context.Context, id string, prefs model.PrivacyPrefs) error {
	return r.set(ctx, id, bson.M{"privacy": prefs})
}

func (r *userRepository) SetPassword(ctx context.Context, id string, passwordHash string) error {
	return r.set(ctx, id, bson.M{"password": passwordHash})
}

// Delete removes the user document only. Related messages, matches,
// notifications and other users' connection lists are left untouched.
func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	result, err := r.mongoRepo.DeleteByID(ctx, id)
	if err != nil {
		r.logger.Error("failed to delete user", zap.String("user_id", id), zap.Error(err))
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return result.DeletedCount > 0, nil
}

// ConnectionsPage returns one page of connection profiles plus the total
// connection count. An out-of-range page yields an empty page.
func (r *userRepository) ConnectionsPage(ctx context.Context, userID string, page, limit int64) ([]model.ConnectionProfile, int64, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, mongo.ErrNoDocuments
	}

	total := int64(len(user.Connections))
	start := (page - 1) * limit
	if start >= total {
		return []model.ConnectionProfile{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageIDs := user.Connections[start:end]

	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().In("_id", pageIDs).Build()
	opts := options.Find().SetProjection(bson.M{
		"name":          1,
		"email":         1,
		"profile_photo": 1,
		"trust_score":   1,
		"location":      1,
		"skills":        1,
		"is_active":     1,
	})

	cursor, err := r.con.Collection(db.UsersCollection).Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to query connections", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, fmt.Errorf("failed to query connections: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []model.ConnectionProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		r.logger.Error("failed to decode connections", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to decode connections: %w", err)
	}
	if profiles == nil {
		profiles = []model.ConnectionProfile{}
	}

	r.logger.Debug("connections page retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(profiles)),
		zap.Int64("total", total),
	)
	return profiles, total, nil
}

// NamesByIDs resolves display names for a set of user IDs in one query
func (r *userRepository) NamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	filter := db.NewFilter().In("_id", ids).Build()
	opts := options.Find().SetProjection(bson.M{"name": 1})

	cursor, err := r.con.Collection(db.UsersCollection).Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to resolve user names", zap.Error(err))
		return nil, fmt.Errorf("failed to resolve user names: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID   primitive.ObjectID `bson:"_id"`
		Name string             `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode user names: %w", err)
	}

	for _, d := range docs {
		names[d.ID] = d.Name
	}
	return names, nil
}

func (r *userRepository) set(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	fields["updated_at"] = time.Now()
	_, err := r.mongoRepo.UpdateByID(ctx, id, fields)
	if err != nil {
		r.logger.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
