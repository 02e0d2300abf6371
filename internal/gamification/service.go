// Package gamification records score events and ranks drivers.
package gamification

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
	"github.com/gin-gonic/gin"
)

const (
	maxBadges = 100

	defaultLeaderboardDays  = 7
	maxLeaderboardDays      = 90
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// Store is the persistence port for badges and gamification facts.
type Store interface {
	ListBadges(ctx context.Context, limit int) ([]v1.Badge, error)
	CreateEvent(ctx context.Context, timeID int64, req v1.CreateGamificationEventRequest) (*v1.GamificationEvent, error)
	Leaderboard(ctx context.Context, since time.Time, limit int) ([]v1.LeaderboardEntry, error)
}

type Service struct {
	store   Store
	buckets timebucket.Store
	nowFn   func() time.Time
}

func NewService(store Store, buckets timebucket.Store) *Service {
	if store == nil {
		panic("gamification: store must not be nil")
	}
	if buckets == nil {
		panic("gamification: time bucket store must not be nil")
	}
	return &Service{
		store:   store,
		buckets: buckets,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/gamification")
	g.GET("/badges", s.HandleListBadges)
	g.POST("/events", s.HandleCreateEvent)
	g.GET("/leaderboard", s.HandleLeaderboard)
}

// RecordEvent files a score change under the hour bucket of its timestamp.
func (s *Service) RecordEvent(ctx context.Context, req v1.CreateGamificationEventRequest) (*v1.GamificationEvent, error) {
	ts := s.nowFn()
	if req.Timestamp != nil {
		ts = req.Timestamp.Time
	}
	timeID, err := timebucket.Resolve(ctx, s.buckets, ts)
	if err != nil {
		return nil, fmt.Errorf("resolve time bucket: %w", err)
	}
	return s.store.CreateEvent(ctx, timeID, req)
}

// Leaderboard ranks drivers by score gained over the last days calendar
// days, counted from today's UTC date.
func (s *Service) Leaderboard(ctx context.Context, days, limit int) ([]v1.LeaderboardEntry, error) {
	today := timebucket.FromTime(s.nowFn()).Date
	return s.store.Leaderboard(ctx, today.AddDate(0, 0, -days), limit)
}
