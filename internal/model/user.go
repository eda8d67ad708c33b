package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Offering and need types
const (
	ItemTypeSkill = "skill"
	ItemTypeGood  = "good"
)

// User represents a user document in MongoDB
type User struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Email           string               `json:"email" bson:"email"`
	Phone           string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Password        string               `json:"-" bson:"password"`
	Avatar          string               `json:"avatar" bson:"avatar"`
	ProfilePhoto    string               `json:"profilePhoto" bson:"profile_photo"`
	Bio             string               `json:"bio" bson:"bio"`
	Location        string               `json:"location" bson:"location"`
	Skills          []string             `json:"skills" bson:"skills"`
	Profession      string               `json:"profession" bson:"profession"`
	Languages       []string             `json:"languages" bson:"languages"`
	TrustScore      int                  `json:"trustScore" bson:"trust_score"`
	Rating          float64              `json:"rating" bson:"rating"`
	CompletedTrades int                  `json:"completedTrades" bson:"completed_trades"`
	IsActive        bool                 `json:"isActive" bson:"is_active"`
	IsVerified      bool                 `json:"isVerified" bson:"is_verified"`
	Connections     []primitive.ObjectID `json:"connections" bson:"connections"`
	Offerings       []Offering           `json:"offerings" bson:"offerings"`
	Needs           []Need               `json:"needs" bson:"needs"`
	Notifications   *NotificationPrefs   `json:"notifications,omitempty" bson:"notifications,omitempty"`
	Privacy         *PrivacyPrefs        `json:"privacy,omitempty" bson:"privacy,omitempty"`
	CreatedAt       time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt       *time.Time           `json:"updatedAt" bson:"updated_at"`
}

// Offering is a catalog entry the user can give
type Offering struct {
	Type           string          `json:"type" bson:"type"`
	Title          string          `json:"title" bson:"title"`
	Description    string          `json:"description" bson:"description"`
	Category       string          `json:"category" bson:"category"`
	Images         []string        `json:"images" bson:"images"`
	SkillLevel     string          `json:"skillLevel" bson:"skill_level"`
	AvailableHours []AvailableHour `json:"availableHours" bson:"available_hours"`
}

// Need is a catalog entry the user wants to receive
type Need struct {
	Type              string `json:"type" bson:"type"`
	Title             string `json:"title" bson:"title"`
	Description       string `json:"description" bson:"description"`
	Category          string `json:"category" bson:"category"`
	PreferredLocation string `json:"preferredLocation" bson:"preferred_location"`
	Urgency           string `json:"urgency" bson:"urgency"`
}

// AvailableHour is a weekly availability slot on an offering
type AvailableHour struct {
	Day       string `json:"day" bson:"day"`
	StartTime string `json:"startTime" bson:"start_time"`
	EndTime   string `json:"endTime" bson:"end_time"`
}

// NotificationPrefs is the full notification preference block. Updates replace
// the whole block; omitted flags come back false. The pointer on User is nil
// until the block is first written, which is the only state that gets the
// schema defaults substituted — a stored all-false block is kept as stored.
type NotificationPrefs struct {
	EmailNotifications bool `json:"emailNotifications" bson:"email_notifications"`
	PushNotifications  bool `json:"pushNotifications" bson:"push_notifications"`
	MarketingEmails    bool `json:"marketingEmails" bson:"marketing_emails"`
	NewMatches         bool `json:"newMatches" bson:"new_matches"`
	Messages           bool `json:"messages" bson:"messages"`
	SkillRequests      bool `json:"skillRequests" bson:"skill_requests"`
}

// PrivacyPrefs is the full privacy preference block, replaced wholesale on update
type PrivacyPrefs struct {
	ProfileVisibility bool `json:"profileVisibility" bson:"profile_visibility"`
	ShowLocation      bool `json:"showLocation" bson:"show_location"`
	ShowEmail         bool `json:"showEmail" bson:"show_email"`
	ShowPhone         bool `json:"showPhone" bson:"show_phone"`
}

// ConnectionProfile is the field subset returned when listing a user's connections
type ConnectionProfile struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	ProfilePhoto string             `json:"profilePhoto" bson:"profile_photo"`
	TrustScore   int                `json:"trustScore" bson:"trust_score"`
	Location     string             `json:"location" bson:"location"`
	Skills       []string           `json:"skills" bson:"skills"`
	IsActive     bool               `json:"isActive" bson:"is_active"`
}

// ProfileUpdate carries the editable profile fields of a user record
type ProfileUpdate struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

// DefaultNotificationPrefs returns the schema defaults for the notification block
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		EmailNotifications: true,
		PushNotifications:  true,
		MarketingEmails:    false,
		NewMatches:         true,
		Messages:           true,
		SkillRequests:      true,
	}
}

// DefaultPrivacyPrefs returns the schema defaults for the privacy block
func DefaultPrivacyPrefs() PrivacyPrefs {
	return PrivacyPrefs{
		ProfileVisibility: true,
		ShowLocation:      true,
		ShowEmail:         false,
		ShowPhone:         false,
	}
}

// NewUser builds a user document with schema defaults applied and the
// password hashed
func NewUser(name, email, password string) (*User, error) {
	notifications := DefaultNotificationPrefs()
	privacy := DefaultPrivacyPrefs()
	u := &User{
		Name:          name,
		Email:         email,
		Avatar:        "/placeholder.svg",
		TrustScore:    50,
		IsActive:      true,
		Notifications: &notifications,
		Privacy:       &privacy,
		CreatedAt:     time.Now(),
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes the plaintext password with bcrypt and stores the hash
func (u *User) SetPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a candidate password against the stored hash
func (u *User) CheckPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}
