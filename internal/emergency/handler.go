package emergency

import (
	"net/http"
	"strings"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgNumberNotFound  = "Emergency number not found"
	msgProfileNotFound = "Emergency profile not found"
	msgNumbersFailed   = "Failed to fetch emergency numbers"
	msgProfileFailed   = "Failed to fetch emergency profile"
	msgPutFailed       = "Failed to save emergency profile"
)

func (s *Service) HandleListNumbers(c *gin.Context) {
	numbers, err := s.store.ListNumbers(c.Request.Context())
	if err != nil {
		httpapi.WriteStoreError(c, msgNumbersFailed, err)
		return
	}
	c.JSON(http.StatusOK, numbers)
}

// HandleGetNumber handles GET /v1/emergency/numbers/:country_code
// Codes are matched case-insensitively.
func (s *Service) HandleGetNumber(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("country_code")))

	n, err := s.store.GetNumber(c.Request.Context(), code)
	if err != nil {
		httpapi.WriteStoreError(c, msgNumbersFailed, err)
		return
	}
	if n == nil {
		httpapi.WriteNotFound(c, msgNumberNotFound)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Service) HandleGetProfile(c *gin.Context) {
	driverID, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}

	p, err := s.store.GetProfile(c.Request.Context(), driverID)
	if err != nil {
		httpapi.WriteStoreError(c, msgProfileFailed, err)
		return
	}
	if p == nil {
		httpapi.WriteNotFound(c, msgProfileNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

// HandlePutProfile handles PUT /v1/drivers/:driver_id/emergency
// An unknown country code or driver is reported as invalid_reference.
func (s *Service) HandlePutProfile(c *gin.Context) {
	driverID, ok := httpapi.ParseID(c, "driver_id")
	if !ok {
		return
	}
	var in v1.EmergencyProfileInput
	if !httpapi.BindJSON(c, &in, in.Normalize) {
		return
	}

	p, err := s.store.PutProfile(c.Request.Context(), driverID, in)
	if err != nil {
		httpapi.WriteStoreError(c, msgPutFailed, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
