// Package httpapi holds the request parsing and error mapping shared by
// every resource handler.
package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	httperr "github.com/drivesafe-lab/drivesafe/internal/core/errors"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// WriteInvalid responds 400 invalid_request.
func WriteInvalid(c *gin.Context, message string, err error) {
	resp := httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidRequestError,
		Message:   message,
	}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// WriteNotFound responds 404 not_found.
func WriteNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, httperr.ErrorResponse{
		ErrorType: httperr.HttpNotFoundError,
		Message:   message,
	})
}

// WriteStoreError maps a store failure to a response. Unknown foreign keys
// are the caller's fault (400), deletes blocked by dependent rows conflict
// (409), and everything else is logged and reported as 500.
func WriteStoreError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidReferenceError,
			Message:   message,
			Details:   "a referenced entity does not exist",
		})
	case errors.Is(err, storage.ErrStillReferenced):
		c.JSON(http.StatusConflict, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidReferenceError,
			Message:   message,
			Details:   "entity is still referenced by other records",
		})
	default:
		slog.Error(message, "error", err, "path", c.FullPath(), "request_id", c.GetString(RequestIDKey))
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
		})
	}
}

// RequestIDKey is the gin context key the server middleware stores the
// request ID under.
const RequestIDKey = "request_id"

// ParseID reads a positive int64 path parameter. On failure it writes a 400
// and returns false.
func ParseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		WriteInvalid(c, fmt.Sprintf("%s must be a positive integer", param), nil)
		return 0, false
	}
	return id, true
}

// ParseIntQuery reads an optional integer query parameter bounded to
// [lo, hi]. Absent parameters yield def. On failure it writes a 400 and
// returns false.
func ParseIntQuery(c *gin.Context, name string, def, lo, hi int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		WriteInvalid(c, fmt.Sprintf("%s must be an integer between %d and %d", name, lo, hi), nil)
		return 0, false
	}
	return n, true
}

// BindJSON decodes the body into dst and runs its validator. On failure it
// writes a 400 and returns false.
func BindJSON(c *gin.Context, dst interface{}, validate func() error) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		WriteInvalid(c, "Invalid request body", err)
		return false
	}
	if validate != nil {
		if err := validate(); err != nil {
			WriteInvalid(c, "Request validation failed", err)
			return false
		}
	}
	return true
}
