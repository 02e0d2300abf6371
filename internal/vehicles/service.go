// Package vehicles serves the vehicle dimension over /v1/vehicles.
package vehicles

import (
	"context"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Store is the persistence port for vehicles.
type Store interface {
	List(ctx context.Context, limit int) ([]v1.Vehicle, error)
	Get(ctx context.Context, id int64) (*v1.Vehicle, error)
	Create(ctx context.Context, in v1.VehicleInput) (*v1.Vehicle, error)
	Update(ctx context.Context, id int64, in v1.VehicleInput) (*v1.Vehicle, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	if store == nil {
		panic("vehicles: store must not be nil")
	}
	return &Service{store: store}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/vehicles")
	g.GET("", s.HandleList)
	g.POST("", s.HandleCreate)
	g.GET("/:vehicle_id", s.HandleGet)
	g.PATCH("/:vehicle_id", s.HandleUpdate)
	g.DELETE("/:vehicle_id", s.HandleDelete)
}
