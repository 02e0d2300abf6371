package profile

import (
	"context"
	"net/http"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgContactsFailed      = "Failed to fetch contacts"
	msgCreateContactFailed = "Failed to add contact"
)

// HandleListContacts handles GET /v1/drivers/:driver_id/profile/contacts
// Primary contacts come first.
func (s *Service) HandleListContacts(c *gin.Context) {
	driverID, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}

	contacts, err := s.store.ListContacts(c.Request.Context(), driverID)
	if err != nil {
		httpapi.WriteStoreError(c, msgContactsFailed, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// HandleCreateContact handles POST /v1/drivers/:driver_id/profile/contacts
func (s *Service) HandleCreateContact(c *gin.Context) {
	driverID, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}
	var in v1.ContactInput
	if !httpapi.BindJSON(c, &in, in.Validate) {
		return
	}

	contact, err := s.store.CreateContact(c.Request.Context(), driverID, in)
	if err != nil {
		httpapi.WriteStoreError(c, msgCreateContactFailed, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// getHandler serves a single per-driver row, 404 when the driver has none.
func getHandler[T any](msgNotFound, msgFailed string, get func(context.Context, int64) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverID, ok := httpapi.ParseID(c, "driver_id")
		if !ok {
			return
		}

		v, err := get(c.Request.Context(), driverID)
		if err != nil {
			httpapi.WriteStoreError(c, msgFailed, err)
			return
		}
		if v == nil {
			httpapi.WriteNotFound(c, msgNotFound)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// upsertHandler binds and validates a partial payload, then creates or
// updates the driver's row.
func upsertHandler[T, In any](msgFailed string, validate func(*In) error, upsert func(context.Context, int64, In) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverID, ok := httpapi.ParseID(c, "driver_id")
		if !ok {
			return
		}
		var in In
		if !httpapi.BindJSON(c, &in, func() error { return validate(&in) }) {
			return
		}

		v, err := upsert(c.Request.Context(), driverID, in)
		if err != nil {
			httpapi.WriteStoreError(c, msgFailed, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}
