package trips

import (
	"net/http"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgNotFound      = "Trip not found"
	msgListFailed    = "Failed to list trips"
	msgGetFailed     = "Failed to fetch trip"
	msgCreateFailed  = "Failed to create trip"
	msgDeleteFailed  = "Failed to delete trip"
	msgSummaryFailed = "Failed to compute trip summary"
)

// HandleList handles GET /v1/trips?limit=N, newest first.
func (s *Service) HandleList(c *gin.Context) {
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultListLimit, 1, maxListLimit)
	if !ok {
		return
	}

	trips, err := s.store.List(c.Request.Context(), limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgListFailed, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// HandleListByDriver handles GET /v1/drivers/:driver_id/trips?limit=N
func (s *Service) HandleListByDriver(c *gin.Context) {
	driverID, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultListLimit, 1, maxListLimit)
	if !ok {
		return
	}

	trips, err := s.store.ListByDriver(c.Request.Context(), driverID, limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgListFailed, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (s *Service) HandleGet(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "trip_id")
	if !ok {
		return
	}

	trip, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		httpapi.WriteStoreError(c, msgGetFailed, err)
		return
	}
	if trip == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// HandleCreate handles POST /v1/trips
func (s *Service) HandleCreate(c *gin.Context) {
	var req v1.CreateTripRequest
	if !httpapi.BindJSON(c, &req, req.Validate) {
		return
	}

	trip, err := s.CreateTrip(c.Request.Context(), req)
	if err != nil {
		httpapi.WriteStoreError(c, msgCreateFailed, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (s *Service) HandleDelete(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "trip_id")
	if !ok {
		return
	}

	removed, err := s.store.Delete(c.Request.Context(), id)
	if err != nil {
		httpapi.WriteStoreError(c, msgDeleteFailed, err)
		return
	}
	if !removed {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleSummary handles GET /v1/drivers/:driver_id/trips/summary
// A driver without trips gets zero counts, not a 404.
func (s *Service) HandleSummary(c *gin.Context) {
	driverID, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}

	sum, err := s.Summary(c.Request.Context(), driverID)
	if err != nil {
		httpapi.WriteStoreError(c, msgSummaryFailed, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
