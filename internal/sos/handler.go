package sos

import (
	"log/slog"
	"net/http"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgNotFound      = "SOS event not found"
	msgListFailed    = "Failed to list unresolved SOS events"
	msgGetFailed     = "Failed to fetch SOS event"
	msgCreateFailed  = "Failed to create SOS event"
	msgResolveFailed = "Failed to resolve SOS event"
)

// HandleListUnresolved handles GET /v1/sos/unresolved?limit=N
func (s *Service) HandleListUnresolved(c *gin.Context) {
	limit, ok := httpapi.ParseIntQuery(c, "limit", defaultListLimit, 1, maxListLimit)
	if !ok {
		return
	}

	events, err := s.store.ListUnresolved(c.Request.Context(), limit)
	if err != nil {
		httpapi.WriteStoreError(c, msgListFailed, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Service) HandleGet(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "sos_id")
	if !ok {
		return
	}

	ev, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		httpapi.WriteStoreError(c, msgGetFailed, err)
		return
	}
	if ev == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// HandleCreate handles POST /v1/sos
func (s *Service) HandleCreate(c *gin.Context) {
	var req v1.CreateSOSRequest
	if !httpapi.BindJSON(c, &req, req.Validate) {
		return
	}

	ev, err := s.Raise(c.Request.Context(), req)
	if err != nil {
		httpapi.WriteStoreError(c, msgCreateFailed, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// HandleResolve handles POST /v1/sos/:sos_id/resolve
// Resolving an already resolved event is a no-op that returns it.
func (s *Service) HandleResolve(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "sos_id")
	if !ok {
		return
	}

	ev, err := s.store.Resolve(c.Request.Context(), id)
	if err != nil {
		httpapi.WriteStoreError(c, msgResolveFailed, err)
		return
	}
	if ev == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}

	slog.Info("SOS resolved", "sos_id", ev.ID, "driver_id", ev.DriverID)
	c.JSON(http.StatusOK, ev)
}
