package drivers

import (
	"net/http"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgNotFound     = "Driver not found"
	msgListFailed   = "Failed to list drivers"
	msgGetFailed    = "Failed to fetch driver"
	msgCreateFailed = "Failed to create driver"
	msgUpdateFailed = "Failed to update driver"
	msgDeleteFailed = "Failed to delete driver"
)

// HandleList handles GET /v1/drivers?limit=N
func (s *Service) HandleList(c *gin.Context) {
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultListLimit, 1, maxListLimit)
	if !ok {
		return
	}

	drivers, err := s.store.List(c.Request.Context(), limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgListFailed, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// HandleGet handles GET /v1/drivers/:driver_id
func (s *Service) HandleGet(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}

	d, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		httpapi.WriteStoreError(c, msgGetFailed, err)
		return
	}
	if d == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, d)
}

// HandleCreate handles POST /v1/drivers
func (s *Service) HandleCreate(c *gin.Context) {
	var in v1.DriverInput
	if !httpapi.BindJSON(c, &in, in.ValidateCreate) {
		return
	}

	d, err := s.store.Create(c.Request.Context(), in)
	if err != nil {
		httpapi.WriteStoreError(c, msgCreateFailed, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// HandleUpdate handles PATCH /v1/drivers/:driver_id
// Only the fields present in the body are changed.
func (s *Service) HandleUpdate(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}
	var in v1.DriverInput
	if !httpapi.BindJSON(c, &in, in.Validate) {
		return
	}

	d, err := s.store.Update(c.Request.Context(), id, in)
	if err != nil {
		httpapi.WriteStoreError(c, msgUpdateFailed, err)
		return
	}
	if d == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, d)
}

// HandleDelete handles DELETE /v1/drivers/:driver_id
func (s *Service) HandleDelete(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "driver_id")
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
