package service

import (
	"context"
	"testing"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestSettingsDefaultsSubstituted(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	// Preference blocks never written
	users := newFakeUserRepo(user)
	svc := NewSettingsService(users)

	settings, err := svc.Settings(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, model.DefaultNotificationPrefs(), settings.Notifications)
	assert.Equal(t, model.DefaultPrivacyPrefs(), settings.Privacy)
	assert.Equal(t, "Asha", settings.Profile.Name)
	assert.NotNil(t, settings.Profile.Skills)
}

func TestSettingsUserMissing(t *testing.T) {
	svc := NewSettingsService(newFakeUserRepo())

	_, err := svc.Settings(context.Background(), primitive.NewObjectID().Hex())
	requireKind(t, err, KindNotFound)
}

func TestUpdateProfileRequiredFields(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	svc := NewSettingsService(newFakeUserRepo(user))

	_, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), model.ProfileUpdate{Email: "asha@example.com"})
	e := requireKind(t, err, KindInvalidRequest)
	assert.Equal(t, "Name and email are required", e.Message)

	_, err = svc.UpdateProfile(context.Background(), user.ID.Hex(), model.ProfileUpdate{Name: "Asha", Email: "   "})
	requireKind(t, err, KindInvalidRequest)
}

func TestUpdateProfileInvalidEmail(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	svc := NewSettingsService(newFakeUserRepo(user))

	// No TLD
	_, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), model.ProfileUpdate{Name: "Asha", Email: "a@b"})
	e := requireKind(t, err, KindInvalidRequest)
	assert.Equal(t, "Invalid email format", e.Message)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	other := testUser("Bilal", "bilal@example.com")
	svc := NewSettingsService(newFakeUserRepo(user, other))

	_, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), model.ProfileUpdate{Name: "Asha", Email: "Bilal@Example.com"})
	e := requireKind(t, err, KindConflict)
	assert.Equal(t, "Email is already taken by another user", e.Message)
}

func TestUpdateProfileKeepingOwnEmail(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	svc := NewSettingsService(newFakeUserRepo(user))

	profile, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), model.ProfileUpdate{
		Name:  "Asha",
		Email: "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", profile.Email)
}

func TestUpdateProfileTrimsAndCleansSkills(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	users := newFakeUserRepo(user)
	svc := NewSettingsService(users)

	profile, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), model.ProfileUpdate{
		Name:     "  Asha  ",
		Email:    " Asha@Example.COM ",
		Bio:      "  carpenter  ",
		Location: " Pune ",
		Skills:   []string{" woodwork ", "", "   ", "cooking"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, "carpenter", profile.Bio)
	assert.Equal(t, "Pune", profile.Location)
	assert.Equal(t, []string{"woodwork", "cooking"}, profile.Skills)

	// Persisted, not just echoed
	assert.Equal(t, []string{"woodwork", "cooking"}, user.Skills)
}

func TestUpdatePhoto(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	svc := NewSettingsService(newFakeUserRepo(user))
	ctx := context.Background()

	_, err := svc.UpdatePhoto(ctx, user.ID.Hex(), "")
	e := requireKind(t, err, KindInvalidRequest)
	assert.Equal(t, "No photo data provided", e.Message)

	_, err = svc.UpdatePhoto(ctx, user.ID.Hex(), "http://example.com/photo.png")
	e = requireKind(t, err, KindInvalidRequest)
	assert.Equal(t, "Invalid image format", e.Message)

	photo := "data:image/png;base64,iVBORw0KGgo="
	stored, err := svc.UpdatePhoto(ctx, user.ID.Hex(), photo)
	require.NoError(t, err)
	assert.Equal(t, photo, stored)
	assert.Equal(t, photo, user.ProfilePhoto)
}

func TestUpdateNotificationsFullReplace(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	user.Notifications = &model.NotificationPrefs{
		EmailNotifications: true,
		PushNotifications:  true,
		MarketingEmails:    true,
		NewMatches:         true,
		Messages:           true,
		SkillRequests:      true,
	}
	svc := NewSettingsService(newFakeUserRepo(user))

	// Only one flag set: every omitted flag must reset to false
	prefs, err := svc.UpdateNotifications(context.Background(), user.ID.Hex(), model.NotificationPrefs{
		EmailNotifications: true,
	})
	require.NoError(t, err)

	assert.True(t, prefs.EmailNotifications)
	assert.False(t, prefs.PushNotifications)
	assert.False(t, prefs.MarketingEmails)
	assert.False(t, prefs.NewMatches)
	assert.False(t, prefs.Messages)
	assert.False(t, prefs.SkillRequests)
	require.NotNil(t, user.Notifications)
	assert.Equal(t, prefs, *user.Notifications)
}

func TestUpdatePrivacyFullReplace(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	stored := model.DefaultPrivacyPrefs()
	user.Privacy = &stored
	svc := NewSettingsService(newFakeUserRepo(user))

	prefs, err := svc.UpdatePrivacy(context.Background(), user.ID.Hex(), model.PrivacyPrefs{ShowEmail: true})
	require.NoError(t, err)

	assert.True(t, prefs.ShowEmail)
	assert.False(t, prefs.ProfileVisibility)
	assert.False(t, prefs.ShowLocation)
	assert.False(t, prefs.ShowPhone)
	require.NotNil(t, user.Privacy)
	assert.Equal(t, prefs, *user.Privacy)
}

func TestUpdateNotificationsAllFalseRoundTrip(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	svc := NewSettingsService(newFakeUserRepo(user))
	ctx := context.Background()

	// Opting out of everything is a legitimate full replace
	_, err := svc.UpdateNotifications(ctx, user.ID.Hex(), model.NotificationPrefs{})
	require.NoError(t, err)

	settings, err := svc.Settings(ctx, user.ID.Hex())
	require.NoError(t, err)

	// The stored all-false block must come back as stored, not as the defaults
	assert.Equal(t, model.NotificationPrefs{}, settings.Notifications)
}

func TestUpdatePrivacyAllFalseRoundTrip(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	svc := NewSettingsService(newFakeUserRepo(user))
	ctx := context.Background()

	_, err := svc.UpdatePrivacy(ctx, user.ID.Hex(), model.PrivacyPrefs{})
	require.NoError(t, err)

	settings, err := svc.Settings(ctx, user.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, model.PrivacyPrefs{}, settings.Privacy)
}

func TestChangePasswordValidation(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	require.NoError(t, user.SetPassword("current-secret"))
	svc := NewSettingsService(newFakeUserRepo(user))
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.ID.Hex(), "", "abcdef")
	requireKind(t, err, KindInvalidRequest)

	err = svc.ChangePassword(ctx, user.ID.Hex(), "current-secret", "abc")
	e := requireKind(t, err, KindInvalidRequest)
	assert.Equal(t, "New password must be at least 6 characters long", e.Message)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	require.NoError(t, user.SetPassword("current-secret"))
	before := user.Password
	svc := NewSettingsService(newFakeUserRepo(user))

	err := svc.ChangePassword(context.Background(), user.ID.Hex(), "wrong", "abcdef")
	e := requireKind(t, err, KindInvalidRequest)
	assert.Equal(t, "Current password is incorrect", e.Message)
	assert.Equal(t, before, user.Password, "password must be unchanged")
}

func TestChangePasswordSuccess(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	require.NoError(t, user.SetPassword("current-secret"))
	svc := NewSettingsService(newFakeUserRepo(user))

	err := svc.ChangePassword(context.Background(), user.ID.Hex(), "current-secret", "new-secret")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-secret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("current-secret")))
}

func TestExportSnapshot(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	user.CreatedAt = time.Now().Add(-10 * 24 * time.Hour)
	user.TrustScore = 62
	user.Offerings = []model.Offering{
		{Type: model.ItemTypeSkill, Title: "Woodwork lessons"},
		{Type: model.ItemTypeGood, Title: "Hand-made chair"},
	}
	svc := NewSettingsService(newFakeUserRepo(user))

	export, err := svc.Export(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), export.Profile.ID)
	assert.Equal(t, 62, export.Profile.TrustScore)
	assert.Equal(t, 2, export.Statistics.TotalOfferings)
	assert.Equal(t, 10, export.Statistics.AccountAge)
	assert.Len(t, export.Offerings, 2)
	assert.WithinDuration(t, time.Now(), export.ExportDate, time.Minute)
}

func TestDeleteAccount(t *testing.T) {
	user := testUser("Asha", "asha@example.com")
	users := newFakeUserRepo(user)
	svc := NewSettingsService(users)

	err := svc.DeleteAccount(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.NotContains(t, users.users, user.ID.Hex())

	err = svc.DeleteAccount(context.Background(), user.ID.Hex())
	requireKind(t, err, KindNotFound)
}
