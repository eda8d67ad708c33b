package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/ayushh0406/swap-seva-odoo1/internal/model"
	"github.com/ayushh0406/swap-seva-odoo1/internal/repo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultActivityLimit = 4

// DefaultTrustDelta is the placeholder trust-score change provider: a random
// integer in [-5, +15). There is no real computation behind it yet.
func DefaultTrustDelta() int {
	return rand.Intn(20) - 5
}

type DashboardService interface {
	Stats(ctx context.Context, userID string) (*model.DashboardStats, error)
	RecentActivities(ctx context.Context, userID string, limit int) ([]model.Activity, error)
}

type dashboardService struct {
	users         repo.UserRepository
	matches       repo.MatchRepository
	conversations repo.ConversationRepository
	messages      repo.MessageRepository
	trustDelta    func() int
}

// NewDashboardService builds the read-only aggregation service. trustDelta
// supplies the trustScoreChange value; pass DefaultTrustDelta in production.
func NewDashboardService(
	users repo.UserRepository,
	matches repo.MatchRepository,
	conversations repo.ConversationRepository,
	messages repo.MessageRepository,
	trustDelta func() int,
) DashboardService {
	if trustDelta == nil {
		trustDelta = DefaultTrustDelta
	}
	return &dashboardService{
		users:         users,
		matches:       matches,
		conversations: conversations,
		messages:      messages,
		trustDelta:    trustDelta,
	}
}

// Stats folds match counts and the unread-message walk into one summary,
// computed fresh from the stores on every call.
func (s *dashboardService) Stats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User not found")
	}

	activeExchanges, err := s.matches.CountInvolving(ctx, user.ID, model.MatchStatusAccepted)
	if err != nil {
		return nil, err
	}

	pendingConfirmations, err := s.matches.CountForRecipient(ctx, user.ID, model.MatchStatusPending)
	if err != nil {
		return nil, err
	}

	completedExchanges, err := s.matches.CountInvolving(ctx, user.ID, model.MatchStatusCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlyCompletions, err := s.matches.CountCompletedSince(ctx, user.ID, monthStart)
	if err != nil {
		return nil, err
	}

	unreadMessages, senders, err := s.unreadWalk(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	trustScore := user.TrustScore
	if trustScore == 0 {
		trustScore = 85
	}

	return &model.DashboardStats{
		TrustScore:           trustScore,
		TrustScoreChange:     s.trustDelta(),
		ActiveExchanges:      int(activeExchanges),
		PendingConfirmations: int(pendingConfirmations),
		CompletedExchanges:   int(completedExchanges),
		MonthlyCompletions:   int(monthlyCompletions),
		UnreadMessages:       unreadMessages,
		MessageSenders:       len(senders),
	}, nil
}

// unreadWalk enumerates the user's conversations, summing unread messages
// from other participants and collecting the distinct senders of the newest
// unread message per conversation.
func (s *dashboardService) unreadWalk(ctx context.Context, userID primitive.ObjectID) (int, map[primitive.ObjectID]struct{}, error) {
	conversations, err := s.conversations.ForParticipant(ctx, userID)
	if err != nil {
		return 0, nil, err
	}

	unread := 0
	senders := make(map[primitive.ObjectID]struct{})

	for _, conversation := range conversations {
		count, err := s.messages.CountUnread(ctx, conversation.ID, userID)
		if err != nil {
			return 0, nil, err
		}
		if count == 0 {
			continue
		}
		unread += int(count)

		sender, err := s.messages.LastUnreadSender(ctx, conversation.ID, userID)
		if err != nil {
			return 0, nil, err
		}
		if sender != nil {
			senders[*sender] = struct{}{}
		}
	}

	return unread, senders, nil
}

// RecentActivities merges completed trades, inbound messages and pending
// trade requests into one feed, sorted descending by timestamp and truncated
// to limit. Ties keep insertion order.
func (s *dashboardService) RecentActivities(ctx context.Context, userID string, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, InvalidRequest("Invalid user ID")
	}

	trades, err := s.matches.RecentCompleted(ctx, userOID, 2)
	if err != nil {
		return nil, err
	}

	conversations, err := s.conversations.ForParticipant(ctx, userOID)
	if err != nil {
		return nil, err
	}
	conversationIDs := Map(conversations, func(c model.Conversation) primitive.ObjectID { return c.ID })

	messages, err := s.messages.RecentInConversations(ctx, conversationIDs, userOID, 2)
	if err != nil {
		return nil, err
	}

	requests, err := s.matches.RecentPendingFor(ctx, userOID, 2)
	if err != nil {
		return nil, err
	}

	names, err := s.resolveNames(ctx, userOID, trades, messages, requests)
	if err != nil {
		return nil, err
	}

	var activities []model.Activity

	for _, trade := range trades {
		other := counterpart(trade, userOID)
		activities = append(activities, model.Activity{
			ID:          trade.ID.Hex(),
			Type:        model.ActivityTradeCompleted,
			Title:       fmt.Sprintf("Skills Exchange Completed with %s", names[other]),
			Description: "You successfully exchanged skills",
			Timestamp:   trade.UpdatedAt,
			RelatedUser: names[other],
		})
	}

	for _, message := range messages {
		activities = append(activities, model.Activity{
			ID:          message.ID.Hex(),
			Type:        model.ActivityMessageReceived,
			Title:       fmt.Sprintf("New message from %s", names[message.Sender]),
			Description: "Regarding your skills exchange",
			Timestamp:   message.CreatedAt,
			RelatedUser: names[message.Sender],
		})
	}

	for _, request := range requests {
		activities = append(activities, model.Activity{
			ID:          request.ID.Hex(),
			Type:        model.ActivityTradeRequest,
			Title:       fmt.Sprintf("New Skills Exchange Request from %s", names[request.Requester]),
			Description: "Wants to exchange skills with you",
			Timestamp:   request.CreatedAt,
			RelatedUser: names[request.Requester],
		})
	}

	if len(activities) < limit {
		activities = append(activities, model.Activity{
			ID:          "trust_score_" + uuid.NewString(),
			Type:        model.ActivityTrustIncreased,
			Title:       "Trust Score Increased",
			Description: "You gained points after completing a skills exchange",
			Timestamp:   time.Now().Add(-2 * 24 * time.Hour),
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}

	return activities, nil
}

func (s *dashboardService) resolveNames(
	ctx context.Context,
	userID primitive.ObjectID,
	trades []model.Match,
	messages []model.Message,
	requests []model.Match,
) (map[primitive.ObjectID]string, error) {
	ids := make([]primitive.ObjectID, 0, len(trades)+len(messages)+len(requests))
	for _, trade := range trades {
		ids = append(ids, counterpart(trade, userID))
	}
	for _, message := range messages {
		ids = append(ids, message.Sender)
	}
	for _, request := range requests {
		ids = append(ids, request.Requester)
	}
	return s.users.NamesByIDs(ctx, ids)
}

func counterpart(match model.Match, userID primitive.ObjectID) primitive.ObjectID {
	if match.Requester == userID {
		return match.Recipient
	}
	return match.Requester
}
