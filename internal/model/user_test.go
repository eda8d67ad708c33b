package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUserDefaults(t *testing.T) {
	u, err := NewUser("Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "Asha", u.Name)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.Equal(t, "/placeholder.svg", u.Avatar)
	assert.Equal(t, 50, u.TrustScore)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsVerified)
	assert.False(t, u.CreatedAt.IsZero())

	require.NotNil(t, u.Notifications)
	assert.Equal(t, DefaultNotificationPrefs(), *u.Notifications)
	require.NotNil(t, u.Privacy)
	assert.Equal(t, DefaultPrivacyPrefs(), *u.Privacy)
}

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
}

func TestDefaultNotificationPrefs(t *testing.T) {
	prefs := DefaultNotificationPrefs()
	assert.True(t, prefs.EmailNotifications)
	assert.True(t, prefs.PushNotifications)
	assert.False(t, prefs.MarketingEmails)
	assert.True(t, prefs.NewMatches)
	assert.True(t, prefs.Messages)
	assert.True(t, prefs.SkillRequests)
}

func TestDefaultPrivacyPrefs(t *testing.T) {
	prefs := DefaultPrivacyPrefs()
	assert.True(t, prefs.ProfileVisibility)
	assert.True(t, prefs.ShowLocation)
	assert.False(t, prefs.ShowEmail)
	assert.False(t, prefs.ShowPhone)
}

func TestCheckPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("correct horse"))

	assert.True(t, u.CheckPassword("correct horse"))
	assert.False(t, u.CheckPassword("wrong horse"))
}

func TestSetPasswordReplacesHash(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("old-password"))
	require.NoError(t, u.SetPassword("new-password"))

	assert.False(t, u.CheckPassword("old-password"))
	assert.True(t, u.CheckPassword("new-password"))
}
