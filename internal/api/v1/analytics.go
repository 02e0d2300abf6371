package v1

import "github.com/shopspring/decimal"

type TripsAnalytics struct {
	TotalTrips     int64           `json:"total_trips"`
	AvgDistanceKm  decimal.Decimal `json:"avg_distance_km"`
	AvgSpeed       decimal.Decimal `json:"avg_speed"`
	AvgEcoScore    decimal.Decimal `json:"avg_eco_score"`
	AvgSafetyScore decimal.Decimal `json:"avg_safety_score"`
}

type SOSAnalytics struct {
	TotalSOS   int64 `json:"total_sos"`
	Resolved   int64 `json:"resolved"`
	Unresolved int64 `json:"unresolved"`
}

// ScoreEntry is one row of the all-time analytics leaderboard. The score
// field is named "score" here, unlike the windowed gamification leaderboard.
type ScoreEntry struct {
	DriverID int64  `json:"driver_id"`
	Name     string `json:"name"`
	Score    int64  `json:"score"`
}

// AnalyticsOverview bundles every analytics view in one response.
type AnalyticsOverview struct {
	Trips       TripsAnalytics `json:"trips"`
	SOS         SOSAnalytics   `json:"sos"`
	Leaderboard []ScoreEntry   `json:"leaderboard"`
}
