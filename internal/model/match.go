package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match lifecycle statuses
const (
	MatchStatusPending   = "pending"
	MatchStatusAccepted  = "accepted"
	MatchStatusCompleted = "completed"
	MatchStatusDeclined  = "declined"
	MatchStatusCancelled = "cancelled"
)

// Match represents a proposed or in-progress barter exchange between two users.
// Read-only in this service; the exchange workflow lives elsewhere.
type Match struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Requester     primitive.ObjectID `json:"requester" bson:"requester"`
	Recipient     primitive.ObjectID `json:"recipient" bson:"recipient"`
	Status        string             `json:"status" bson:"status"`
	OfferedItem   string             `json:"offeredItem" bson:"offered_item"`
	RequestedItem string             `json:"requestedItem" bson:"requested_item"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}
