package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/model"
	"github.com/ayushh0406/swap-seva-odoo1/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ProfileData is the profile field subset exposed by the settings endpoints
type ProfileData struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Skills       []string `json:"skills"`
	ProfilePhoto string   `json:"profilePhoto"`
}

// Settings is the full account-settings view
type Settings struct {
	Profile       ProfileData             `json:"profile"`
	Notifications model.NotificationPrefs `json:"notifications"`
	Privacy       model.PrivacyPrefs      `json:"privacy"`
}

// ExportStatistics summarizes the account for the data export
type ExportStatistics struct {
	TotalOfferings int `json:"totalOfferings"`
	AccountAge     int `json:"accountAge"` // days since registration
}

// ExportProfile is the profile section of the data export
type ExportProfile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Bio          string     `json:"bio"`
	Location     string     `json:"location"`
	Skills       []string   `json:"skills"`
	ProfilePhoto string     `json:"profilePhoto"`
	TrustScore   int        `json:"trustScore"`
	IsVerified   bool       `json:"isVerified"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// ExportSettings is the preference section of the data export
type ExportSettings struct {
	Notifications model.NotificationPrefs `json:"notifications"`
	Privacy       model.PrivacyPrefs      `json:"privacy"`
}

// Export is the synchronous account-data snapshot
type Export struct {
	ExportDate time.Time        `json:"exportDate"`
	Profile    ExportProfile    `json:"profile"`
	Settings   ExportSettings   `json:"settings"`
	Offerings  []model.Offering `json:"offerings"`
	Statistics ExportStatistics `json:"statistics"`
}

type SettingsService interface {
	Settings(ctx context.Context, userID string) (*Settings, error)
	UpdateProfile(ctx context.Context, userID string, update model.ProfileUpdate) (*ProfileData, error)
	UpdatePhoto(ctx context.Context, userID string, photo string) (string, error)
	UpdateNotifications(ctx context.Context, userID string, prefs model.NotificationPrefs) (model.NotificationPrefs, error)
	UpdatePrivacy(ctx context.Context, userID string, prefs model.PrivacyPrefs) (model.PrivacyPrefs, error)
	ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error
	Export(ctx context.Context, userID string) (*Export, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type settingsService struct {
	users repo.UserRepository
}

func NewSettingsService(users repo.UserRepository) SettingsService {
	return &settingsService{users: users}
}

// Settings returns the profile plus preference blocks. Defaults are
// substituted only for blocks that were never written; a stored block is
// returned as stored, even when every flag is false.
func (s *settingsService) Settings(ctx context.Context, userID string) (*Settings, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User not found")
	}

	return &Settings{
		Profile:       profileData(user),
		Notifications: notificationPrefs(user),
		Privacy:       privacyPrefs(user),
	}, nil
}

// UpdateProfile validates and persists the editable profile fields
func (s *settingsService) UpdateProfile(ctx context.Context, userID string, update model.ProfileUpdate) (*ProfileData, error) {
	name := strings.TrimSpace(update.Name)
	email := strings.ToLower(strings.TrimSpace(update.Email))

	if name == "" || email == "" {
		return nil, InvalidRequest("Name and email are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, InvalidRequest("Invalid email format")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID.Hex() != userID {
		return nil, Conflict("Email is already taken by another user")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User not found")
	}

	skills := Filter(
		Map(update.Skills, strings.TrimSpace),
		func(skill string) bool { return skill != "" },
	)
	if skills == nil {
		skills = []string{}
	}

	cleaned := model.ProfileUpdate{
		Name:     name,
		Email:    email,
		Phone:    strings.TrimSpace(update.Phone),
		Bio:      strings.TrimSpace(update.Bio),
		Location: strings.TrimSpace(update.Location),
		Skills:   skills,
	}

	if err := s.users.UpdateProfile(ctx, userID, cleaned); err != nil {
		return nil, err
	}

	return &ProfileData{
		Name:         cleaned.Name,
		Email:        cleaned.Email,
		Phone:        cleaned.Phone,
		Bio:          cleaned.Bio,
		Location:     cleaned.Location,
		Skills:       cleaned.Skills,
		ProfilePhoto: user.ProfilePhoto,
	}, nil
}

// UpdatePhoto stores the photo data URI verbatim after a prefix check
func (s *settingsService) UpdatePhoto(ctx context.Context, userID string, photo string) (string, error) {
	if photo == "" {
		return "", InvalidRequest("No photo data provided")
	}
	if !strings.HasPrefix(photo, "data:image/") {
		return "", InvalidRequest("Invalid image format")
	}

	if err := s.users.SetProfilePhoto(ctx, userID, photo); err != nil {
		return "", err
	}
	return photo, nil
}

// UpdateNotifications replaces the entire notification preference block
func (s *settingsService) UpdateNotifications(ctx context.Context, userID string, prefs model.NotificationPrefs) (model.NotificationPrefs, error) {
	if err := s.users.SetNotificationPrefs(ctx, userID, prefs); err != nil {
		return model.NotificationPrefs{}, err
	}
	return prefs, nil
}

// UpdatePrivacy replaces the entire privacy preference block
func (s *settingsService) UpdatePrivacy(ctx context.Context, userID string, prefs model.PrivacyPrefs) (model.PrivacyPrefs, error) {
	if err := s.users.SetPrivacyPrefs(ctx, userID, prefs); err != nil {
		return model.PrivacyPrefs{}, err
	}
	return prefs, nil
}

func (s *settingsService) ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return InvalidRequest("Current password and new password are required")
	}
	if len(newPassword) < 6 {
		return InvalidRequest("New password must be at least 6 characters long")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NotFound("User not found")
	}

	if !user.CheckPassword(currentPassword) {
		return InvalidRequest("Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.SetPassword(ctx, userID, string(hashed))
}

// Export assembles the account-data snapshot synchronously
func (s *settingsService) Export(ctx context.Context, userID string) (*Export, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User not found")
	}

	offerings := user.Offerings
	if offerings == nil {
		offerings = []model.Offering{}
	}

	return &Export{
		ExportDate: time.Now(),
		Profile: ExportProfile{
			ID:           user.ID.Hex(),
			Name:         user.Name,
			Email:        user.Email,
			Phone:        user.Phone,
			Bio:          user.Bio,
			Location:     user.Location,
			Skills:       user.Skills,
			ProfilePhoto: user.ProfilePhoto,
			TrustScore:   user.TrustScore,
			IsVerified:   user.IsVerified,
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		},
		Settings: ExportSettings{
			Notifications: notificationPrefs(user),
			Privacy:       privacyPrefs(user),
		},
		Offerings: offerings,
		Statistics: ExportStatistics{
			TotalOfferings: len(offerings),
			AccountAge:     int(time.Since(user.CreatedAt).Hours() / 24),
		},
	}, nil
}

// DeleteAccount removes the user document only. Messages, matches,
// notifications and other users' connection lists keep their references.
func (s *settingsService) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NotFound("User not found")
	}

	_, err = s.users.Delete(ctx, userID)
	return err
}

func notificationPrefs(user *model.User) model.NotificationPrefs {
	if user.Notifications == nil {
		return model.DefaultNotificationPrefs()
	}
	return *user.Notifications
}

func privacyPrefs(user *model.User) model.PrivacyPrefs {
	if user.Privacy == nil {
		return model.DefaultPrivacyPrefs()
	}
	return *user.Privacy
}

func profileData(user *model.User) ProfileData {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileData{
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Bio:          user.Bio,
		Location:     user.Location,
		Skills:       skills,
		ProfilePhoto: user.ProfilePhoto,
	}
}
