package model

// -----------------------------------------------------------------
// Monitor API Response Models
// -----------------------------------------------------------------

// HealthResponse is the main response for the monitor API
type HealthResponse struct {
	Status      string           `json:"status"`      // "healthy" or "unhealthy"
	Database    string           `json:"database"`    // "connected" or "unreachable"
	Collections map[string]int64 `json:"collections"` // Document count per collection
}
