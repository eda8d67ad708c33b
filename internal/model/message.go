package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message represents a chat message in MongoDB. Read-only in this service;
// only the unread walk and activity feed consume it.
type Message struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ConversationID primitive.ObjectID `json:"conversationId" bson:"conversation_id"`
	Sender         primitive.ObjectID `json:"sender" bson:"sender"`
	Content        string             `json:"content" bson:"content"`
	Read           bool               `json:"read" bson:"read"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
}
