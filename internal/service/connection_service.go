package service

import (
	"context"
	"fmt"

	"github.com/ayushh0406/swap-seva-odoo1/internal/model"
	"github.com/ayushh0406/swap-seva-odoo1/internal/repo"

	"go.mongodb.org/mongo-driver/mongo"
)

// Pagination describes one page of a collection listing
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ConnectionPage is one page of a user's connection profiles
type ConnectionPage struct {
	Connections []model.ConnectionProfile `json:"connections"`
	Pagination  Pagination                `json:"pagination"`
}

type ConnectionService interface {
	SendRequest(ctx context.Context, senderID, recipientID string) error
	AcceptRequest(ctx context.Context, actorID, notificationID string) error
	Connections(ctx context.Context, userID string, page, limit int64) (*ConnectionPage, error)
}

type connectionService struct {
	users         repo.UserRepository
	notifications repo.NotificationRepository
}

func NewConnectionService(users repo.UserRepository, notifications repo.NotificationRepository) ConnectionService {
	return &connectionService{
		users:         users,
		notifications: notifications,
	}
}

// SendRequest creates a connection_request notification for the recipient.
// Connection lists are not touched until the request is accepted.
func (s *connectionService) SendRequest(ctx context.Context, senderID, recipientID string) error {
	if senderID == recipientID {
		return InvalidRequest("Cannot send connection request to yourself")
	}

	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		return err
	}
	if recipient == nil {
		return NotFound("User not found")
	}

	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		return err
	}
	if sender == nil {
		return NotFound("User not found")
	}

	for _, c := range sender.Connections {
		if c == recipient.ID {
			return Conflict("Already connected with this user")
		}
	}

	notification := &model.Notification{
		Recipient: recipient.ID,
		Sender:    sender.ID,
		Type:      model.NotificationConnectionRequest,
		Title:     "New Connection Request",
		Message:   fmt.Sprintf("%s wants to connect with you", sender.Name),
		Data: model.NotificationData{
			UserID:           sender.ID.Hex(),
			UserName:         sender.Name,
			UserProfilePhoto: sender.ProfilePhoto,
		},
	}

	_, err = s.notifications.Insert(ctx, notification)
	return err
}

// AcceptRequest adds each user to the other's connection set, marks the
// originating notification read and notifies the requester. The two
// connection writes are not transactional: a crash between them leaves an
// asymmetric graph.
func (s *connectionService) AcceptRequest(ctx context.Context, actorID, notificationID string) error {
	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil || notification.Recipient.Hex() != actorID {
		return NotFound("Notification not found")
	}

	if notification.Type != model.NotificationConnectionRequest {
		return InvalidRequest("Invalid notification type")
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return NotFound("User not found")
	}

	senderID := notification.Sender

	if err := s.users.AddConnection(ctx, actor.ID, senderID); err != nil {
		return err
	}
	if err := s.users.AddConnection(ctx, senderID, actor.ID); err != nil {
		return err
	}

	if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
		return err
	}

	accepted := &model.Notification{
		Recipient: senderID,
		Sender:    actor.ID,
		Type:      model.NotificationConnectionAccepted,
		Title:     "Connection Request Accepted",
		Message:   fmt.Sprintf("%s accepted your connection request", actor.Name),
		Data: model.NotificationData{
			UserID:           actor.ID.Hex(),
			UserName:         actor.Name,
			UserProfilePhoto: actor.ProfilePhoto,
		},
	}

	_, err = s.notifications.Insert(ctx, accepted)
	return err
}

// Connections returns one page of the user's connection profiles in the
// store's natural order
func (s *connectionService) Connections(ctx context.Context, userID string, page, limit int64) (*ConnectionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	profiles, total, err := s.users.ConnectionsPage(ctx, userID, page, limit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NotFound("User not found")
		}
		return nil, err
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &ConnectionPage{
		Connections: profiles,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}
