// Package sos records emergency events and their resolution.
package sos

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Store is the persistence port for SOS facts. Create must write the
// location and the event atomically. Get and Resolve return nil when the
// event does not exist.
type Store interface {
	Create(ctx context.Context, timeID int64, req v1.CreateSOSRequest) (*v1.SOSEvent, error)
	Get(ctx context.Context, id int64) (*v1.SOSEvent, error)
	ListUnresolved(ctx context.Context, limit int) ([]v1.SOSEvent, error)
	Resolve(ctx context.Context, id int64) (*v1.SOSEvent, error)
}

type Service struct {
	store   Store
	buckets timebucket.Store
}

func NewService(store Store, buckets timebucket.Store) *Service {
	if store == nil {
		panic("sos: store must not be nil")
	}
	if buckets == nil {
		panic("sos: time bucket store must not be nil")
	}
	return &Service{store: store, buckets: buckets}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/sos")
	g.GET("/unresolved", s.HandleListUnresolved)
	g.POST("", s.HandleCreate)
	g.GET("/:sos_id", s.HandleGet)
	g.POST("/:sos_id/resolve", s.HandleResolve)
}

// Raise records a new, unresolved SOS event.
func (s *Service) Raise(ctx context.Context, req v1.CreateSOSRequest) (*v1.SOSEvent, error) {
	var ts time.Time
	if req.Timestamp != nil {
		ts = req.Timestamp.Time
	}
	timeID, err := timebucket.Resolve(ctx, s.buckets, ts)
	if err != nil {
		return nil, fmt.Errorf("resolve time bucket: %w", err)
	}

	ev, err := s.store.Create(ctx, timeID, req)
	if err != nil {
		return nil, err
	}

	slog.Warn("SOS raised",
		"sos_id", ev.ID,
		"driver_id", ev.DriverID,
		"vehicle_id", ev.VehicleID,
		"location_id", ev.LocationID)
	return ev, nil
}
