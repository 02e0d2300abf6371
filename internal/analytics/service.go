// Package analytics serves fleet-wide aggregates over the fact tables.
package analytics

import (
	"context"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLeaderboardLimit = 5
	maxLeaderboardLimit     = 50
	averagePrecision        = 2
)

// Store runs the aggregate queries.
type Store interface {
	Trips(ctx context.Context) (v1.TripsAnalytics, error)
	SOS(ctx context.Context) (v1.SOSAnalytics, error)
	Leaderboard(ctx context.Context, limit int) ([]v1.ScoreEntry, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	if store == nil {
		panic("analytics: store must not be nil")
	}
	return &Service{store: store}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/analytics")
	g.GET("/trips", s.HandleTrips)
	g.GET("/sos", s.HandleSOS)
	g.GET("/leaderboard", s.HandleLeaderboard)
	g.GET("/overview", s.HandleOverview)
}

// Trips returns trip count and averages rounded to two decimal places.
func (s *Service) Trips(ctx context.Context) (v1.TripsAnalytics, error) {
	a, err := s.store.Trips(ctx)
	if err != nil {
		return v1.TripsAnalytics{}, err
	}
	a.AvgDistanceKm = a.AvgDistanceKm.Round(averagePrecision)
	a.AvgSpeed = a.AvgSpeed.Round(averagePrecision)
	a.AvgEcoScore = a.AvgEcoScore.Round(averagePrecision)
	a.AvgSafetyScore = a.AvgSafetyScore.Round(averagePrecision)
	return a, nil
}

// Overview runs the trip, SOS and leaderboard aggregates concurrently. The
// first failure cancels the others.
func (s *Service) Overview(ctx context.Context, leaderboardLimit int) (*v1.AnalyticsOverview, error) {
	var out v1.AnalyticsOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		trips, err := s.Trips(gctx)
		if err != nil {
			return fmt.Errorf("trips: %w", err)
		}
		out.Trips = trips
		return nil
	})
	g.Go(func() error {
		sos, err := s.store.SOS(gctx)
		if err != nil {
			return fmt.Errorf("sos: %w", err)
		}
		out.SOS = sos
		return nil
	})
	g.Go(func() error {
		board, err := s.store.Leaderboard(gctx, leaderboardLimit)
		if err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}
		out.Leaderboard = board
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
