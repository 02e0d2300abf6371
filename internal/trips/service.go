// Package trips records trip facts and serves per-driver trip summaries.
package trips

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
	scorePrecision   = 2
)

// Store is the persistence port for trip facts.
type Store interface {
	List(ctx context.Context, limit int) ([]v1.Trip, error)
	ListByDriver(ctx context.Context, driverID int64, limit int) ([]v1.Trip, error)
	Get(ctx context.Context, id int64) (*v1.Trip, error)
	Create(ctx context.Context, timeID int64, req v1.CreateTripRequest) (*v1.Trip, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SummaryByDriver(ctx context.Context, driverID int64) (v1.TripSummary, error)
}

type Service struct {
	store   Store
	buckets timebucket.Store
}

func NewService(store Store, buckets timebucket.Store) *Service {
	if store == nil {
		panic("trips: store must not be nil")
	}
	if buckets == nil {
		panic("trips: time bucket store must not be nil")
	}
	return &Service{store: store, buckets: buckets}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/trips")
	g.GET("", s.HandleList)
	g.POST("", s.HandleCreate)
	g.GET("/:trip_id", s.HandleGet)
	g.DELETE("/:trip_id", s.HandleDelete)

	r.GET("/v1/drivers/:driver_id/trips", s.HandleListByDriver)
	r.GET("/v1/drivers/:driver_id/trips/summary", s.HandleSummary)
}

// CreateTrip files the trip under the hour bucket of its timestamp, or of
// the current time when none is given.
func (s *Service) CreateTrip(ctx context.Context, req v1.CreateTripRequest) (*v1.Trip, error) {
	var ts time.Time
	if req.Timestamp != nil {
		ts = req.Timestamp.Time
	}
	timeID, err := timebucket.Resolve(ctx, s.buckets, ts)
	if err != nil {
		return nil, fmt.Errorf("resolve time bucket: %w", err)
	}
	return s.store.Create(ctx, timeID, req)
}

// Summary returns the driver's trip count and score averages rounded to two
// decimal places.
func (s *Service) Summary(ctx context.Context, driverID int64) (v1.TripSummary, error) {
	sum, err := s.store.SummaryByDriver(ctx, driverID)
	if err != nil {
		return v1.TripSummary{}, err
	}
	sum.AvgSafetyScore = sum.AvgSafetyScore.Round(scorePrecision)
	sum.AvgEcoScore = sum.AvgEcoScore.Round(scorePrecision)
	return sum, nil
}
