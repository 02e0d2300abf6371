package analytics

import (
	"net/http"

	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgTripsFailed       = "Failed to fetch trip analytics"
	msgSOSFailed         = "Failed to fetch SOS analytics"
	msgLeaderboardFailed = "Failed to fetch leaderboard"
	msgOverviewFailed    = "Failed to fetch analytics overview"
)

func (s *Service) HandleTrips(c *gin.Context) {
	a, err := s.Trips(c.Request.Context())
	if err != nil {
		httpapi.WriteStoreError(c, msgTripsFailed, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Service) HandleSOS(c *gin.Context) {
	a, err := s.store.SOS(c.Request.Context())
	if err != nil {
		httpapi.WriteStoreError(c, msgSOSFailed, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// HandleLeaderboard handles GET /v1/analytics/leaderboard?limit=N (all-time scores).
func (s *Service) HandleLeaderboard(c *gin.Context) {
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultLeaderboardLimit, 1, maxLeaderboardLimit)
	if !ok {
		return
	}

	board, err := s.store.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgLeaderboardFailed, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// HandleOverview handles GET /v1/analytics/overview?limit=N
func (s *Service) HandleOverview(c *gin.Context) {
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultLeaderboardLimit, 1, maxLeaderboardLimit)
	if !ok {
		return
	}

	overview, err := s.Overview(c.Request.Context(), limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgOverviewFailed, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
