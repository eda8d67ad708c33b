package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	NotificationConnectionRequest  = "connection_request"
	NotificationConnectionAccepted = "connection_accepted"
)

// Notification represents a directed message between users in MongoDB
type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Recipient primitive.ObjectID `json:"recipient" bson:"recipient"`
	Sender    primitive.ObjectID `json:"sender" bson:"sender"`
	Type      string             `json:"type" bson:"type"`
	Title     string             `json:"title" bson:"title"`
	Message   string             `json:"message" bson:"message"`
	Data      NotificationData   `json:"data" bson:"data"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt *time.Time         `json:"updatedAt" bson:"updated_at"`
}

// NotificationData is the structured payload carried by a notification.
// For connection events it identifies the acting user.
type NotificationData struct {
	UserID           string `json:"userId,omitempty" bson:"user_id,omitempty"`
	UserName         string `json:"userName,omitempty" bson:"user_name,omitempty"`
	UserProfilePhoto string `json:"userProfilePhoto,omitempty" bson:"user_profile_photo,omitempty"`
}
