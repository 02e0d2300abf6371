package gamification

import (
	"net/http"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgBadgesFailed      = "Failed to fetch badges"
	msgEventFailed       = "Failed to record gamification event"
	msgLeaderboardFailed = "Failed to fetch leaderboard"
)

func (s *Service) HandleListBadges(c *gin.Context) {
	badges, err := s.store.ListBadges(c.Request.Context(), maxBadges)
	if err != nil {
		httpapi.WriteStoreError(c, msgBadgesFailed, err)
		return
	}
	c.JSON(http.StatusOK, badges)
}

// HandleCreateEvent handles POST /v1/gamification/events
func (s *Service) HandleCreateEvent(c *gin.Context) {
	var req v1.CreateGamificationEventRequest
	if !httpapi.BindJSON(c, &req, nil) {
		return
	}

	ev, err := s.RecordEvent(c.Request.Context(), req)
	if err != nil {
		httpapi.WriteStoreError(c, msgEventFailed, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// HandleLeaderboard handles GET /v1/gamification/leaderboard?days=N&limit=M
func (s *Service) HandleLeaderboard(c *gin.Context) {
	days, ok := httpapi.ParseIntQuery(c, "days", defaultLeaderboardDays, 1, maxLeaderboardDays)
	if !ok {
		return
	}
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultLeaderboardLimit, 1, maxLeaderboardLimit)
	if !ok {
		return
	}

	entries, err := s.Leaderboard(c.Request.Context(), days, limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgLeaderboardFailed, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
