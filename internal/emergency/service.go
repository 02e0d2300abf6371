// Package emergency serves the ambulance number directory and each driver's
// emergency preferences.
package emergency

import (
	"context"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/gin-gonic/gin"
)

// Store is the persistence port for emergency data. PutProfile replaces the
// whole profile atomically.
type Store interface {
	ListNumbers(ctx context.Context) ([]v1.EmergencyNumber, error)
	GetNumber(ctx context.Context, countryCode string) (*v1.EmergencyNumber, error)
	GetProfile(ctx context.Context, driverID int64) (*v1.EmergencyProfile, error)
	PutProfile(ctx context.Context, driverID int64, in v1.EmergencyProfileInput) (*v1.EmergencyProfile, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	if store == nil {
		panic("emergency: store must not be nil")
	}
	return &Service{store: store}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/emergency/numbers", s.HandleListNumbers)
	r.GET("/v1/emergency/numbers/:country_code", s.HandleGetNumber)
	r.GET("/v1/drivers/:driver_id/emergency", s.HandleGetProfile)
	r.PUT("/v1/drivers/:driver_id/emergency", s.HandlePutProfile)
}
