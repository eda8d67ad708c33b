package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/model"
	"github.com/ayushh0406/swap-seva-odoo1/internal/repo"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users map[string]*model.User
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		f.users[u.ID.Hex()] = u
	}
	return f
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) (string, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = user
	return user.ID.Hex(), nil
}

func (f *fakeUserRepo) AddConnection(_ context.Context, userID, other primitive.ObjectID) error {
	user := f.users[userID.Hex()]
	if user == nil {
		return nil
	}
	for _, c := range user.Connections {
		if c == other {
			return nil
		}
	}
	user.Connections = append(user.Connections, other)
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id string, update model.ProfileUpdate) error {
	user := f.users[id]
	if user == nil {
		return nil
	}
	user.Name = update.Name
	user.Email = update.Email
	user.Phone = update.Phone
	user.Bio = update.Bio
	user.Location = update.Location
	user.Skills = update.Skills
	return nil
}

func (f *fakeUserRepo) SetProfilePhoto(_ context.Context, id string, photo string) error {
	if user := f.users[id]; user != nil {
		user.ProfilePhoto = photo
	}
	return nil
}

func (f *fakeUserRepo) SetNotificationPrefs(_ context.Context, id string, prefs model.NotificationPrefs) error {
	if user := f.users[id]; user != nil {
		user.Notifications = &prefs
	}
	return nil
}

func (f *fakeUserRepo) SetPrivacyPrefs(_ context.Context, id string, prefs model.PrivacyPrefs) error {
	if user := f.users[id]; user != nil {
		user.Privacy = &prefs
	}
	return nil
}

func (f *fakeUserRepo) SetPassword(_ context.Context, id string, passwordHash string) error {
	if user := f.users[id]; user != nil {
		user.Password = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeUserRepo) ConnectionsPage(_ context.Context, userID string, page, limit int64) ([]model.ConnectionProfile, int64, error) {
	user := f.users[userID]
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

	var profiles []model.ConnectionProfile
	for _, id := range user.Connections[start:end] {
		if other := f.users[id.Hex()]; other != nil {
			profiles = append(profiles, model.ConnectionProfile{
				ID:           other.ID,
				Name:         other.Name,
				Email:        other.Email,
				ProfilePhoto: other.ProfilePhoto,
				TrustScore:   other.TrustScore,
				Location:     other.Location,
				Skills:       other.Skills,
				IsActive:     other.IsActive,
			})
		}
	}
	return profiles, total, nil
}

func (f *fakeUserRepo) NamesByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	for _, id := range ids {
		if user := f.users[id.Hex()]; user != nil {
			names[id] = user.Name
		}
	}
	return names, nil
}

type fakeNotificationRepo struct {
	notifications map[string]*model.Notification
	inserted      []*model.Notification
}

var _ repo.NotificationRepository = (*fakeNotificationRepo)(nil)

func newFakeNotificationRepo(notifications ...*model.Notification) *fakeNotificationRepo {
	f := &fakeNotificationRepo{notifications: make(map[string]*model.Notification)}
	for _, n := range notifications {
		if n.ID.IsZero() {
			n.ID = primitive.NewObjectID()
		}
		f.notifications[n.ID.Hex()] = n
	}
	return f
}

func (f *fakeNotificationRepo) Insert(_ context.Context, notification *model.Notification) (string, error) {
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	f.notifications[notification.ID.Hex()] = notification
	f.inserted = append(f.inserted, notification)
	return notification.ID.Hex(), nil
}

func (f *fakeNotificationRepo) FindByID(_ context.Context, id string) (*model.Notification, error) {
	return f.notifications[id], nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	if n := f.notifications[id]; n != nil {
		n.Read = true
	}
	return nil
}

type fakeMatchRepo struct {
	matches []model.Match
}

var _ repo.MatchRepository = (*fakeMatchRepo)(nil)

func (f *fakeMatchRepo) involves(m model.Match, userID primitive.ObjectID) bool {
	return m.Requester == userID || m.Recipient == userID
}

func (f *fakeMatchRepo) CountInvolving(_ context.Context, userID primitive.ObjectID, status string) (int64, error) {
	var count int64
	for _, m := range f.matches {
		if f.involves(m, userID) && m.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeMatchRepo) CountForRecipient(_ context.Context, userID primitive.ObjectID, status string) (int64, error) {
	var count int64
	for _, m := range f.matches {
		if m.Recipient == userID && m.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeMatchRepo) CountCompletedSince(_ context.Context, userID primitive.ObjectID, since time.Time) (int64, error) {
	var count int64
	for _, m := range f.matches {
		if f.involves(m, userID) && m.Status == model.MatchStatusCompleted && !m.UpdatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeMatchRepo) RecentCompleted(_ context.Context, userID primitive.ObjectID, limit int64) ([]model.Match, error) {
	var matches []model.Match
	for _, m := range f.matches {
		if f.involves(m, userID) && m.Status == model.MatchStatusCompleted {
			matches = append(matches, m)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].UpdatedAt.After(matches[j].UpdatedAt) })
	if int64(len(matches)) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeMatchRepo) RecentPendingFor(_ context.Context, userID primitive.ObjectID, limit int64) ([]model.Match, error) {
	var matches []model.Match
	for _, m := range f.matches {
		if m.Recipient == userID && m.Status == model.MatchStatusPending {
			matches = append(matches, m)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	if int64(len(matches)) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

type fakeConversationRepo struct {
	conversations []model.Conversation
}

var _ repo.ConversationRepository = (*fakeConversationRepo)(nil)

func (f *fakeConversationRepo) ForParticipant(_ context.Context, userID primitive.ObjectID) ([]model.Conversation, error) {
	var result []model.Conversation
	for _, c := range f.conversations {
		for _, p := range c.Participants {
			if p == userID {
				result = append(result, c)
				break
			}
		}
	}
	return result, nil
}

type fakeMessageRepo struct {
	messages []model.Message
}

var _ repo.MessageRepository = (*fakeMessageRepo)(nil)

func (f *fakeMessageRepo) CountUnread(_ context.Context, conversationID, notSender primitive.ObjectID) (int64, error) {
	var count int64
	for _, m := range f.messages {
		if m.ConversationID == conversationID && m.Sender != notSender && !m.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepo) LastUnreadSender(_ context.Context, conversationID, notSender primitive.ObjectID) (*primitive.ObjectID, error) {
	var last *model.Message
	for i := range f.messages {
		m := &f.messages[i]
		if m.ConversationID != conversationID || m.Sender == notSender || m.Read {
			continue
		}
		if last == nil || m.CreatedAt.After(last.CreatedAt) {
			last = m
		}
	}
	if last == nil {
		return nil, nil
	}
	sender := last.Sender
	return &sender, nil
}

func (f *fakeMessageRepo) RecentInConversations(_ context.Context, conversationIDs []primitive.ObjectID, notSender primitive.ObjectID, limit int64) ([]model.Message, error) {
	inScope := make(map[primitive.ObjectID]bool, len(conversationIDs))
	for _, id := range conversationIDs {
		inScope[id] = true
	}

	var messages []model.Message
	for _, m := range f.messages {
		if inScope[m.ConversationID] && m.Sender != notSender {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].CreatedAt.After(messages[j].CreatedAt) })
	if int64(len(messages)) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}
