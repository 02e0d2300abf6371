package vehicles

import (
	"net/http"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgNotFound     = "Vehicle not found"
	msgListFailed   = "Failed to list vehicles"
	msgGetFailed    = "Failed to fetch vehicle"
	msgCreateFailed = "Failed to create vehicle"
	msgUpdateFailed = "Failed to update vehicle"
	msgDeleteFailed = "Failed to delete vehicle"
)

func (s *Service) HandleList(c *gin.Context) {
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultListLimit, 1, maxListLimit)
	if !ok {
		return
	}

	vehicles, err := s.store.List(c.Request.Context(), limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgListFailed, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (s *Service) HandleGet(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "vehicle_id")
	if !ok {
		return
	}

	v, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		httpapi.WriteStoreError(c, msgGetFailed, err)
		return
	}
	if v == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Service) HandleCreate(c *gin.Context) {
	var in v1.VehicleInput
	if !httpapi.BindJSON(c, &in, in.ValidateCreate) {
		return
	}

	v, err := s.store.Create(c.Request.Context(), in)
	if err != nil {
		httpapi.WriteStoreError(c, msgCreateFailed, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (s *Service) HandleUpdate(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "vehicle_id")
	if !ok {
		return
	}
	var in v1.VehicleInput
	if !httpapi.BindJSON(c, &in, in.Validate) {
		return
	}

	v, err := s.store.Update(c.Request.Context(), id, in)
	if err != nil {
		httpapi.WriteStoreError(c, msgUpdateFailed, err)
		return
	}
	if v == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Service) HandleDelete(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "vehicle_id")
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
