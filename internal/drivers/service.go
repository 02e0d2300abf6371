// Package drivers serves the driver dimension over /v1/drivers.
package drivers

import (
	"context"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Store is the persistence port for drivers. Get and Update return nil when
// the driver does not exist.
type Store interface {
	List(ctx context.Context, limit int) ([]v1.Driver, error)
	Get(ctx context.Context, id int64) (*v1.Driver, error)
	Create(ctx context.Context, in v1.DriverInput) (*v1.Driver, error)
	Update(ctx context.Context, id int64, in v1.DriverInput) (*v1.Driver, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	if store == nil {
		panic("drivers: store must not be nil")
	}
	return &Service{store: store}
}

// RegisterRoutes registers the driver CRUD routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/drivers")
	g.GET("", s.HandleList)
	g.POST("", s.HandleCreate)
	g.GET("/:driver_id", s.HandleGet)
	g.PATCH("/:driver_id", s.HandleUpdate)
	g.DELETE("/:driver_id", s.HandleDelete)
}
