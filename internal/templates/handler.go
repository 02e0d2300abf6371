package templates

import (
	"net/http"
	"strconv"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
)

const (
	msgNotFound     = "Template not found"
	msgListFailed   = "Failed to fetch templates"
	msgGetFailed    = "Failed to fetch template"
	msgCreateFailed = "Failed to create template"
)

// HandleList handles GET /v1/templates?use_cache=true|false (default true).
func (s *Service) HandleList(c *gin.Context) {
	useCache := true
	if raw, ok := c.GetQuery("use_cache"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpapi.WriteInvalid(c, "use_cache must be a boolean", err)
			return
		}
		useCache = v
	}

	resp, err := s.List(c.Request.Context(), useCache)
	if err != nil {
		httpapi.WriteStoreError(c, msgListFailed, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) HandleGet(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	t, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		httpapi.WriteStoreError(c, msgGetFailed, err)
		return
	}
	if t == nil {
		httpapi.WriteNotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

// HandleCreate handles POST /v1/templates
func (s *Service) HandleCreate(c *gin.Context) {
	var req v1.CreateTemplateRequest
	if !httpapi.BindJSON(c, &req, req.Normalize) {
		return
	}

	t, err := s.Create(c.Request.Context(), req)
	if err != nil {
		httpapi.WriteStoreError(c, msgCreateFailed, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
