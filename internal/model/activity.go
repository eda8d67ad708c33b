package model

import "time"

// -----------------------------------------------------------------
// Dashboard API Response Models
// -----------------------------------------------------------------

// Activity feed event types
const (
	ActivityTradeCompleted  = "trade_completed"
	ActivityMessageReceived = "message_received"
	ActivityTradeRequest    = "trade_request"
	ActivityTrustIncreased  = "trust_increased"
)

// DashboardStats is the summary object returned by the stats endpoint
type DashboardStats struct {
	TrustScore           int `json:"trustScore"`
	TrustScoreChange     int `json:"trustScoreChange"`
	ActiveExchanges      int `json:"activeExchanges"`
	PendingConfirmations int `json:"pendingConfirmations"`
	CompletedExchanges   int `json:"completedExchanges"`
	MonthlyCompletions   int `json:"monthlyCompletions"`
	UnreadMessages       int `json:"unreadMessages"`
	MessageSenders       int `json:"messageSenders"`
}

// Activity is one entry of the ranked recent-activity feed
type Activity struct {
	ID          string    `json:"_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	RelatedUser string    `json:"relatedUser,omitempty"`
}
