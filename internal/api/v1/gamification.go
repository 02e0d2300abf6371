package v1

type Badge struct {
	ID          int64   `json:"badge_id"`
	Name        string  `json:"badge_name"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// GamificationEvent is a row of the gamification fact table.
type GamificationEvent struct {
	ID          int64  `json:"gamelog_id"`
	DriverID    int64  `json:"driver_id"`
	TimeID      int64  `json:"time_id"`
	BadgeID     *int64 `json:"badge_id,omitempty"`
	ScoreChange *int   `json:"score_change,omitempty"`
	StreakDays  *int   `json:"streak_days,omitempty"`
}

type CreateGamificationEventRequest struct {
	DriverID    int64      `json:"driver_id" binding:"required"`
	ScoreChange int        `json:"score_change"`
	StreakDays  *int       `json:"streak_days"`
	BadgeID     *int64     `json:"badge_id"`
	Timestamp   *Timestamp `json:"timestamp"`
}

// LeaderboardEntry ranks a driver by accumulated score.
type LeaderboardEntry struct {
	DriverID   int64  `json:"driver_id"`
	Name       string `json:"name"`
	TotalScore int64  `json:"total_score"`
}
